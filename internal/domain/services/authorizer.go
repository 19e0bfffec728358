package services

import "context"

// ResourceAuthorizer checks if a user can access resources.
// Current implementation: ownership-based (user owns the folder).
type ResourceAuthorizer interface {
	// CanAccessFolder checks if user can place or read links in a folder
	CanAccessFolder(ctx context.Context, userID, folderID string) error
}
