package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"linkvault/internal/config"
	"linkvault/internal/domain/models"
	"linkvault/internal/domain/repositories"
	"linkvault/internal/domain/services"
)

type folderService struct {
	folderRepo repositories.FolderRepository
	linkRepo   repositories.LinkRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	linkRepo repositories.LinkRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		linkRepo:   linkRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// ListFolders lists the user's folders, newest first
func (s *folderService) ListFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return s.folderRepo.List(ctx, userID)
}

// GetFolder retrieves a folder together with its links
func (s *folderService) GetFolder(ctx context.Context, userID, folderID string) (*models.FolderWithLinks, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}

	links, err := s.linkRepo.List(ctx, models.LinkFilter{UserID: userID, FolderID: folder.ID})
	if err != nil {
		return nil, err
	}

	return &models.FolderWithLinks{Folder: *folder, Links: links}, nil
}

// CreateFolder creates a new folder
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, invalid(err, requiredField{"name", "Folder name is required"})
	}

	folder := &models.Folder{
		UserID: req.UserID,
		Name:   req.Name,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"user_id", folder.UserID,
	)

	return folder, nil
}

// UpdateFolder renames a folder. An absent or empty name leaves it unchanged.
func (s *folderService) UpdateFolder(ctx context.Context, userID, folderID string, req *services.UpdateFolderRequest) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}

	name, ok := nonBlank(req.Name)
	if !ok {
		return folder, nil
	}

	if err := validation.Validate(name, validation.Length(1, config.MaxFolderNameLength)); err != nil {
		return nil, invalid(validation.Errors{"name": err})
	}

	folder.Name = name
	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder updated", "id", folder.ID, "name", folder.Name)

	return folder, nil
}

// DeleteFolder deletes the folder's links, then the folder, in one transaction
func (s *folderService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if _, err := s.folderRepo.GetByID(ctx, folderID, userID); err != nil {
		return err
	}

	var removed int64
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		n, err := s.linkRepo.DeleteByFolder(ctx, folderID, userID)
		if err != nil {
			return err
		}
		removed = n
		return s.folderRepo.Delete(ctx, folderID, userID)
	})
	if err != nil {
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}

	s.logger.Info("folder deleted", "id", folderID, "links_removed", removed)

	return nil
}

func (s *folderService) validateCreateRequest(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxFolderNameLength)),
	)
}
