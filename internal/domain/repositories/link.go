package repositories

import (
	"context"

	"linkvault/internal/domain/models"
)

// LinkRepository defines data access operations for links.
// Every method is scoped by the owning user.
type LinkRepository interface {
	// Create creates a new link
	Create(ctx context.Context, link *models.Link) error

	// GetByID retrieves a link owned by userID
	GetByID(ctx context.Context, id, userID string) (*models.Link, error)

	// List retrieves links matching the filter, newest first
	List(ctx context.Context, filter models.LinkFilter) ([]models.Link, error)

	// Update updates a link's title, url and updated_at timestamp
	Update(ctx context.Context, link *models.Link) error

	// Delete deletes a link and returns the deleted record
	Delete(ctx context.Context, id, userID string) (*models.Link, error)

	// DeleteByFolder deletes all links of a user in one folder
	// and returns how many were removed
	DeleteByFolder(ctx context.Context, folderID, userID string) (int64, error)
}
