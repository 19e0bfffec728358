package memory

import (
	"context"
	"fmt"
	"time"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
)

type linkRepository struct {
	s *Store
}

func (r *linkRepository) Create(ctx context.Context, link *models.Link) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.s.lock(ctx)()

	if _, ok := r.s.folders[link.FolderID]; !ok {
		return fmt.Errorf("folder %s: %w", link.FolderID, domain.ErrNotFound)
	}

	id, seq := r.s.nextID()
	link.ID = id
	link.CreatedAt = r.s.now()
	link.UpdatedAt = link.CreatedAt
	r.s.links[id] = storedLink{Link: *link, seq: seq}
	return nil
}

func (r *linkRepository) GetByID(ctx context.Context, id, userID string) (*models.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.s.rlock(ctx)()

	stored, ok := r.s.links[id]
	if !ok || stored.UserID != userID {
		return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
	}
	link := stored.Link
	return &link, nil
}

func (r *linkRepository) List(ctx context.Context, filter models.LinkFilter) ([]models.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := r.s.rlock(ctx)
	matched := []storedLink{}
	for _, stored := range r.s.links {
		if stored.UserID != filter.UserID {
			continue
		}
		if filter.FolderID != "" && stored.FolderID != filter.FolderID {
			continue
		}
		matched = append(matched, stored)
	}
	unlock()

	newestFirst(matched,
		func(l storedLink) time.Time { return l.CreatedAt },
		func(l storedLink) uint64 { return l.seq },
	)

	links := make([]models.Link, 0, len(matched))
	for _, stored := range matched {
		links = append(links, stored.Link)
	}
	return links, nil
}

func (r *linkRepository) Update(ctx context.Context, link *models.Link) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.s.lock(ctx)()

	stored, ok := r.s.links[link.ID]
	if !ok || stored.UserID != link.UserID {
		return fmt.Errorf("link %s: %w", link.ID, domain.ErrNotFound)
	}

	stored.Title = link.Title
	stored.URL = link.URL
	stored.UpdatedAt = r.s.now()
	r.s.links[link.ID] = stored
	link.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *linkRepository) Delete(ctx context.Context, id, userID string) (*models.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.s.lock(ctx)()

	stored, ok := r.s.links[id]
	if !ok || stored.UserID != userID {
		return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
	}

	delete(r.s.links, id)
	link := stored.Link
	return &link, nil
}

func (r *linkRepository) DeleteByFolder(ctx context.Context, folderID, userID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	defer r.s.lock(ctx)()

	var removed int64
	for id, stored := range r.s.links {
		if stored.FolderID == folderID && stored.UserID == userID {
			delete(r.s.links, id)
			removed++
		}
	}
	return removed, nil
}
