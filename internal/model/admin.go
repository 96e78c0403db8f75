package model

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse carries the admin bearer token.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
