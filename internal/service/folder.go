package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// FolderService handles folder business logic. Deleting a folder never
// deletes its documents: they are reparented to the root atomically with
// the folder's removal.
type FolderService struct {
	folderRepo repositories.FolderRepository
	docRepo    repositories.DocumentRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	docRepo repositories.DocumentRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Create creates a folder with the trimmed name
func (s *FolderService) Create(ctx context.Context, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validateFolderName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	folder := &models.Folder{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "id", folder.ID, "name", folder.Name)

	// A fresh folder contains nothing
	folder.DocumentCount = 0

	return folder, nil
}

// List returns all folders ordered by name ascending with live document counts
func (s *FolderService) List(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	return folders, nil
}

// Update renames a folder and bumps updated_at
func (s *FolderService) Update(ctx context.Context, id, name string) (*models.Folder, error) {
	if err := requireUUID(id); err != nil {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	name = strings.TrimSpace(name)
	if err := validateFolderName(name); err != nil {
		return nil, err
	}

	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	folder.Name = name
	folder.UpdatedAt = time.Now().UTC()

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	count, err := s.folderRepo.CountDocuments(ctx, folder.ID)
	if err != nil {
		return nil, err
	}
	folder.DocumentCount = count

	s.logger.Info("folder updated", "id", folder.ID, "name", folder.Name)

	return folder, nil
}

// Delete removes a folder and reparents its documents to the root, as one
// atomic unit of work. Either both happen or neither does.
func (s *FolderService) Delete(ctx context.Context, id string) error {
	if err := requireUUID(id); err != nil {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.docRepo.ClearFolder(txCtx, id); err != nil {
			return err
		}
		return s.folderRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id)
	return nil
}

func validateFolderName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error("name required"),
		validation.Length(1, config.MaxFolderNameLength),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}
