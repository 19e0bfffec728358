package repositories

import (
	"context"

	"linkvault/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
// Every method is scoped by the owning user.
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder owned by userID
	GetByID(ctx context.Context, id, userID string) (*models.Folder, error)

	// List retrieves all folders of a user, newest first
	List(ctx context.Context, userID string) ([]models.Folder, error)

	// Update updates a folder's name and updated_at timestamp
	Update(ctx context.Context, folder *models.Folder) error

	// Delete deletes a folder. Deleting an absent folder is a no-op.
	Delete(ctx context.Context, id, userID string) error
}
