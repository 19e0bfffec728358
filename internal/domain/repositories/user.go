package repositories

import (
	"context"

	"linkvault/internal/domain/models"
)

// UserRepository defines data access operations for identities
type UserRepository interface {
	// Create inserts a user and fills ID and timestamps.
	// Returns *domain.DuplicateFieldError on a username/email collision.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email (password hash included)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
