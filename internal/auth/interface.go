package auth

import (
	"time"

	"linkvault/internal/domain/models"
)

// JWTVerifier defines the interface for session token verification.
// This abstraction keeps the middleware and services agnostic to the
// verification details.
type JWTVerifier interface {
	// VerifyToken validates a token string and returns the parsed claims.
	// Returns domain.ErrMissingToken, domain.ErrInvalidToken or
	// domain.ErrExpiredToken.
	VerifyToken(tokenString string) (*models.SessionClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

// TokenIssuer mints signed session tokens for an identity.
type TokenIssuer interface {
	IssueToken(userID string) (token string, expiresAt time.Time, err error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns domain.ErrInvalidCredential when password does not match hash.
	Compare(hash, password string) error
}
