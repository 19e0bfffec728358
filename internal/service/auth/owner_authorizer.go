package auth

import (
	"context"
	"errors"
	"fmt"

	"linkvault/internal/domain"
	"linkvault/internal/domain/repositories"
)

// OwnerBasedAuthorizer implements ResourceAuthorizer using ownership checks.
// A user can access a folder only if they own it.
type OwnerBasedAuthorizer struct {
	folderRepo repositories.FolderRepository
}

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(folderRepo repositories.FolderRepository) *OwnerBasedAuthorizer {
	return &OwnerBasedAuthorizer{folderRepo: folderRepo}
}

// CanAccessFolder checks if user owns the folder.
// Someone else's folder yields ErrNotFound, same as a missing one.
func (a *OwnerBasedAuthorizer) CanAccessFolder(ctx context.Context, userID, folderID string) error {
	// FolderRepository.GetByID already filters by userID
	_, err := a.folderRepo.GetByID(ctx, folderID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
		}
		return fmt.Errorf("check folder access: %w", err)
	}
	return nil
}
