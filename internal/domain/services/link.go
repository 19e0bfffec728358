package services

import (
	"context"

	"linkvault/internal/domain/models"
)

// LinkService handles link business logic.
// All operations are scoped to the calling user.
type LinkService interface {
	// ListLinks lists the user's links, optionally in one folder
	ListLinks(ctx context.Context, userID, folderID string) ([]models.Link, error)

	// GetLink retrieves a link
	GetLink(ctx context.Context, userID, linkID string) (*models.Link, error)

	// CreateLink creates a link inside one of the user's folders
	CreateLink(ctx context.Context, req *CreateLinkRequest) (*models.Link, error)

	// UpdateLink applies a partial update to title and/or url
	UpdateLink(ctx context.Context, userID, linkID string, req *UpdateLinkRequest) (*models.Link, error)

	// DeleteLink deletes a link and returns the deleted record
	DeleteLink(ctx context.Context, userID, linkID string) (*models.Link, error)
}

// CreateLinkRequest represents a link creation request
type CreateLinkRequest struct {
	UserID   string `json:"-"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	FolderID string `json:"folderId"`
}

// UpdateLinkRequest represents a link update request.
// Only non-nil, non-blank fields are applied
// (handler maps from httputil.OptionalString).
type UpdateLinkRequest struct {
	Title *string
	URL   *string
}
