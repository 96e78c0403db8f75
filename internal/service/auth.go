package service

import (
	"context"
	"errors"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrPasswordRequired   = errors.New("password is required")
	ErrAdminDisabled      = errors.New("admin access is not configured")
)

// AuthService issues admin tokens in exchange for the admin password.
type AuthService struct {
	adminHash string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. An empty adminHash disables login.
func NewAuthService(adminHash, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		adminHash: adminHash,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login verifies the admin password and returns a signed token.
func (s *AuthService) Login(_ context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if s.adminHash == "" {
		return model.AuthResponse{}, ErrAdminDisabled
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	match, err := crypto.VerifySecret(req.Password, s.adminHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(crypto.RoleAdmin, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry / time.Second),
	}, nil
}
