package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"linkvault/internal/auth"
	"linkvault/internal/config"
	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
	"linkvault/internal/domain/repositories"
	"linkvault/internal/domain/services"
)

type authService struct {
	userRepo repositories.UserRepository
	hasher   auth.PasswordHasher
	issuer   auth.TokenIssuer
	verifier auth.JWTVerifier
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher auth.PasswordHasher,
	issuer auth.TokenIssuer,
	verifier auth.JWTVerifier,
	logger *slog.Logger,
) services.AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
		logger:   logger,
	}
}

// Register creates an identity and issues a session token
func (s *authService) Register(ctx context.Context, req *services.RegisterRequest) (*models.Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validateRegisterRequest(req); err != nil {
		return nil, invalid(err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		var dup *domain.DuplicateFieldError
		if errors.As(err, &dup) {
			s.logger.Info("registration rejected", "field", dup.Field)
		}
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID, "username", user.Username)

	return s.issue(user)
}

// Login checks credentials and issues a session token
func (s *authService) Login(ctx context.Context, req *services.LoginRequest) (*models.Session, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validateLoginRequest(req); err != nil {
		return nil, invalid(err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		s.logger.Debug("login rejected", "user_id", user.ID)
		return nil, err
	}

	s.logger.Info("user logged in", "id", user.ID)

	return s.issue(user)
}

// Verify resolves a session token to its identity
func (s *authService) Verify(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.verifier.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.GetUserID())
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) issue(user *models.User) (*models.Session, error) {
	token, expiresAt, err := s.issuer.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return &models.Session{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) validateRegisterRequest(req *services.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, config.MaxUsernameLength)),
		validation.Field(&req.Email, validation.Required, validation.Length(1, config.MaxEmailLength)),
		validation.Field(&req.Password, validation.Required, validation.Length(1, config.MaxPasswordLength)),
	)
}

func (s *authService) validateLoginRequest(req *services.LoginRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
