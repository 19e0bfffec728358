package services

import (
	"context"

	"linkvault/internal/domain/models"
)

// AuthService handles registration, login and session verification.
// Sessions are stateless signed tokens: there is no server-side revocation.
type AuthService interface {
	// Register creates an identity and issues a session token
	Register(ctx context.Context, req *RegisterRequest) (*models.Session, error)

	// Login checks credentials and issues a session token
	Login(ctx context.Context, req *LoginRequest) (*models.Session, error)

	// Verify resolves a session token to its identity (public fields only)
	Verify(ctx context.Context, token string) (*models.User, error)
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
