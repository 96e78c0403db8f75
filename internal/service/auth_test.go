package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var (
	adminHashOnce sync.Once
	adminHash     string
)

func testAdminHash(t *testing.T) string {
	t.Helper()
	adminHashOnce.Do(func() {
		h, err := crypto.HashSecret("admin-secret")
		if err != nil {
			t.Fatalf("HashSecret() unexpected error: %v", err)
		}
		adminHash = h
	})
	return adminHash
}

func TestLogin_Disabled(t *testing.T) {
	svc := NewAuthService("", "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), model.LoginRequest{Password: "anything"})
	if err != ErrAdminDisabled {
		t.Errorf("expected ErrAdminDisabled, got %v", err)
	}
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := NewAuthService(testAdminHash(t), "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), model.LoginRequest{})
	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(testAdminHash(t), "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), model.LoginRequest{Password: "wrong"})
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(testAdminHash(t), "test-secret", time.Hour)

	resp, err := svc.Login(context.Background(), model.LoginRequest{Password: "admin-secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", resp.ExpiresIn)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Role != crypto.RoleAdmin {
		t.Errorf("expected admin role, got %q", claims.Role)
	}
}

func TestLogin_MalformedHash(t *testing.T) {
	svc := NewAuthService("not-a-hash", "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), model.LoginRequest{Password: "x"})
	if err != crypto.ErrInvalidHashFormat {
		t.Errorf("expected ErrInvalidHashFormat, got %v", err)
	}
}
