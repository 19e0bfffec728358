package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// HMACTokenManager issues and verifies HS256 session tokens.
// Verification keys are looked up by "kid" from a static JWK Set so a
// previous secret keeps working during rotation.
type HMACTokenManager struct {
	jwks   keyfunc.Keyfunc
	secret []byte
	kid    string
	ttl    time.Duration
	logger *slog.Logger
}

// TokenConfig holds the signing material of a HMACTokenManager.
type TokenConfig struct {
	Secret         string
	PreviousSecret string
	TTL            time.Duration
}

// NewTokenManager creates a token manager from the configured secrets.
func NewTokenManager(cfg TokenConfig, logger *slog.Logger) (*HMACTokenManager, error) {
	raw, err := BuildKeySetJSON(cfg.Secret, cfg.PreviousSecret)
	if err != nil {
		return nil, err
	}

	jwks, err := keyfunc.NewJWKSetJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys: %w", err)
	}

	logger.Info("token manager initialized",
		"ttl", cfg.TTL.String(),
		"rotation_key", cfg.PreviousSecret != "",
	)

	return &HMACTokenManager{
		jwks:   jwks,
		secret: []byte(cfg.Secret),
		kid:    KeyID(cfg.Secret),
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

// IssueToken signs a token for userID with the primary key.
func (m *HMACTokenManager) IssueToken(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	token.Header["kid"] = m.kid

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// VerifyToken validates a session token and extracts its claims.
func (m *HMACTokenManager) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, domain.ErrMissingToken
	}

	// Only HS256 is accepted, which also rules out algorithm confusion
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, m.jwks.Keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		m.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.Subject == "" {
		m.logger.Debug("token missing subject claim")
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

// Close is a no-op; the key set is static and held in memory.
func (m *HMACTokenManager) Close() error {
	return nil
}
