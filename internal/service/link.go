package service

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"linkvault/internal/config"
	"linkvault/internal/domain/models"
	"linkvault/internal/domain/repositories"
	"linkvault/internal/domain/services"
)

type linkService struct {
	linkRepo   repositories.LinkRepository
	authorizer services.ResourceAuthorizer
	logger     *slog.Logger
}

// NewLinkService creates a new link service
func NewLinkService(
	linkRepo repositories.LinkRepository,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) services.LinkService {
	return &linkService{
		linkRepo:   linkRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// ListLinks lists the user's links, optionally in one folder
func (s *linkService) ListLinks(ctx context.Context, userID, folderID string) ([]models.Link, error) {
	return s.linkRepo.List(ctx, models.LinkFilter{
		UserID:   userID,
		FolderID: strings.TrimSpace(folderID),
	})
}

// GetLink retrieves a link
func (s *linkService) GetLink(ctx context.Context, userID, linkID string) (*models.Link, error) {
	return s.linkRepo.GetByID(ctx, linkID, userID)
}

// CreateLink creates a link inside one of the user's folders
func (s *linkService) CreateLink(ctx context.Context, req *services.CreateLinkRequest) (*models.Link, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.URL = strings.TrimSpace(req.URL)
	req.FolderID = strings.TrimSpace(req.FolderID)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, invalid(err,
			requiredField{"title", "Title and URL are required"},
			requiredField{"url", "Title and URL are required"},
			requiredField{"folderId", "Folder ID is required"},
		)
	}

	// A folder owned by someone else is reported as missing
	if err := s.authorizer.CanAccessFolder(ctx, req.UserID, req.FolderID); err != nil {
		return nil, err
	}

	link := &models.Link{
		UserID:   req.UserID,
		FolderID: req.FolderID,
		Title:    req.Title,
		URL:      req.URL,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("link created",
		"id", link.ID,
		"folder_id", link.FolderID,
		"user_id", link.UserID,
	)

	return link, nil
}

// UpdateLink applies a partial update to title and/or url
func (s *linkService) UpdateLink(ctx context.Context, userID, linkID string, req *services.UpdateLinkRequest) (*models.Link, error) {
	link, err := s.linkRepo.GetByID(ctx, linkID, userID)
	if err != nil {
		return nil, err
	}

	title, hasTitle := nonBlank(req.Title)
	url, hasURL := nonBlank(req.URL)
	if !hasTitle && !hasURL {
		return link, nil
	}

	if hasTitle {
		link.Title = title
	}
	if hasURL {
		link.URL = url
	}

	if err := s.validateLink(link); err != nil {
		return nil, invalid(err)
	}

	if err := s.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("link updated", "id", link.ID)

	return link, nil
}

// DeleteLink deletes a link and returns the deleted record
func (s *linkService) DeleteLink(ctx context.Context, userID, linkID string) (*models.Link, error) {
	link, err := s.linkRepo.Delete(ctx, linkID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("link deleted", "id", link.ID, "folder_id", link.FolderID)

	return link, nil
}

func (s *linkService) validateCreateRequest(req *services.CreateLinkRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxLinkTitleLength)),
		validation.Field(&req.URL, validation.Required, validation.Length(1, config.MaxLinkURLLength)),
		validation.Field(&req.FolderID, validation.Required),
	)
}

func (s *linkService) validateLink(link *models.Link) error {
	return validation.ValidateStruct(link,
		validation.Field(&link.Title, validation.Length(1, config.MaxLinkTitleLength)),
		validation.Field(&link.URL, validation.Length(1, config.MaxLinkURLLength)),
	)
}
