package memory

import (
	"context"
	"fmt"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.s.lock(ctx)()

	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return &domain.DuplicateFieldError{Field: "username"}
		}
		if existing.Email == user.Email {
			return &domain.DuplicateFieldError{Field: "email"}
		}
	}

	user.ID, _ = r.s.nextID()
	user.CreatedAt = r.s.now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.s.rlock(ctx)()

	user, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer r.s.rlock(ctx)()

	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}
