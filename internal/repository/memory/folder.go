package memory

import (
	"context"
	"fmt"
	"time"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
)

type folderRepository struct {
	s *Store
}

func (r *folderRepository) Create(ctx context.Context, folder *models.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.s.lock(ctx)()

	if _, ok := r.s.users[folder.UserID]; !ok {
		return fmt.Errorf("user %s: %w", folder.UserID, domain.ErrNotFound)
	}

	id, seq := r.s.nextID()
	folder.ID = id
	folder.CreatedAt = r.s.now()
	folder.UpdatedAt = folder.CreatedAt
	r.s.folders[id] = storedFolder{Folder: *folder, seq: seq}
	return nil
}

func (r *folderRepository) GetByID(ctx context.Context, id, userID string) (*models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.s.rlock(ctx)()

	stored, ok := r.s.folders[id]
	if !ok || stored.UserID != userID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	folder := stored.Folder
	return &folder, nil
}

func (r *folderRepository) List(ctx context.Context, userID string) ([]models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := r.s.rlock(ctx)
	matched := []storedFolder{}
	for _, stored := range r.s.folders {
		if stored.UserID == userID {
			matched = append(matched, stored)
		}
	}
	unlock()

	newestFirst(matched,
		func(f storedFolder) time.Time { return f.CreatedAt },
		func(f storedFolder) uint64 { return f.seq },
	)

	folders := make([]models.Folder, 0, len(matched))
	for _, stored := range matched {
		folders = append(folders, stored.Folder)
	}
	return folders, nil
}

func (r *folderRepository) Update(ctx context.Context, folder *models.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.s.lock(ctx)()

	stored, ok := r.s.folders[folder.ID]
	if !ok || stored.UserID != folder.UserID {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	stored.Name = folder.Name
	stored.UpdatedAt = r.s.now()
	r.s.folders[folder.ID] = stored
	folder.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, id, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.s.lock(ctx)()

	stored, ok := r.s.folders[id]
	if !ok || stored.UserID != userID {
		return nil
	}

	for _, link := range r.s.links {
		if link.FolderID == id {
			return fmt.Errorf("folder %s still has links: %w", id, domain.ErrConflict)
		}
	}

	delete(r.s.folders, id)
	return nil
}
