package services

import (
	"context"

	"linkvault/internal/domain/models"
)

// FolderService handles folder business logic.
// All operations are scoped to the calling user.
type FolderService interface {
	// ListFolders lists the user's folders, newest first
	ListFolders(ctx context.Context, userID string) ([]models.Folder, error)

	// GetFolder retrieves a folder together with its links
	GetFolder(ctx context.Context, userID, folderID string) (*models.FolderWithLinks, error)

	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// UpdateFolder renames a folder
	UpdateFolder(ctx context.Context, userID, folderID string, req *UpdateFolderRequest) (*models.Folder, error)

	// DeleteFolder deletes a folder and every link inside it
	DeleteFolder(ctx context.Context, userID, folderID string) error
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	UserID string `json:"-"`
	Name   string `json:"name"`
}

// UpdateFolderRequest represents a folder update request.
// A nil or blank name leaves the folder unchanged
// (handler maps from httputil.OptionalString).
type UpdateFolderRequest struct {
	Name *string
}
