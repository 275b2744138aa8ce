package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/markdown"
)

// DocumentService handles document business logic: title derivation on
// every content write, paginated listing, moves and share resolution.
type DocumentService struct {
	docRepo    repositories.DocumentRepository
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	folderRepo repositories.FolderRepository,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		docRepo:    docRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// Create creates a new unfiled document. Content may be empty. The share
// token is assigned once here and never changes afterwards.
func (s *DocumentService) Create(ctx context.Context, content string) (*models.Document, error) {
	now := time.Now().UTC()
	doc := &models.Document{
		Title:     markdown.DeriveTitle(content),
		Content:   content,
		ShareID:   uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document created", "id", doc.ID)

	return doc, nil
}

// Get retrieves a document by ID
func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	if err := requireUUID(id); err != nil {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return s.docRepo.GetByID(ctx, id)
}

// List returns one page of documents ordered by created_at descending,
// id ascending on ties. HasMore reports whether a further page exists
// under the same filter at query time.
func (s *DocumentService) List(ctx context.Context, page, pageSize int, filter models.FolderFilter) (*models.DocumentPage, error) {
	if page < 0 {
		return nil, &domain.ValidationError{Message: "page must not be negative"}
	}
	if pageSize <= 0 {
		return nil, &domain.ValidationError{Message: "page size must be positive"}
	}
	if pageSize > config.MaxPageSize {
		pageSize = config.MaxPageSize
	}

	items, total, err := s.docRepo.List(ctx, filter, page*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.DocumentListItem{}
	}

	return &models.DocumentPage{
		Documents: items,
		HasMore:   (page+1)*pageSize < total,
	}, nil
}

// Update replaces the document's content, rederives the title and bumps
// updated_at. share_id, created_at and folder assignment are untouched.
func (s *DocumentService) Update(ctx context.Context, id, content string) (*models.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.Content = content
	doc.Title = markdown.DeriveTitle(content)
	doc.UpdatedAt = time.Now().UTC()

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Delete removes a document permanently. Its share link resolves to
// NotFound from then on.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if err := requireUUID(id); err != nil {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("document deleted", "id", id)
	return nil
}

// Move reassigns a document to a folder; nil means the unfiled root.
// Moving to a nonexistent folder is a validation error and leaves the
// document untouched.
func (s *DocumentService) Move(ctx context.Context, id string, folderID *string) (*models.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if folderID != nil {
		if err := requireUUID(*folderID); err != nil {
			return nil, &domain.ValidationError{Message: "folder not found"}
		}
		if _, err := s.folderRepo.GetByID(ctx, *folderID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ValidationError{Message: "folder not found"}
			}
			return nil, err
		}
	}

	doc.FolderID = folderID
	doc.UpdatedAt = time.Now().UTC()

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document moved", "id", doc.ID, "folder_id", folderID)

	return doc, nil
}

// ResolveShare maps a share token to the read-only document view.
// The lookup is exact and case-sensitive; there is no expiry.
func (s *DocumentService) ResolveShare(ctx context.Context, token string) (*models.SharedDocument, error) {
	if token == "" {
		return nil, fmt.Errorf("share token: %w", domain.ErrNotFound)
	}

	doc, err := s.docRepo.GetByShareID(ctx, token)
	if err != nil {
		return nil, err
	}

	return &models.SharedDocument{
		Title:     doc.Title,
		Content:   doc.Content,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// ParseFolderFilter maps the folder query parameter to a filter: absent
// means no filter, the sentinel "root" selects unfiled documents, and
// anything else must be a folder id.
func ParseFolderFilter(param string) (models.FolderFilter, error) {
	switch param {
	case "":
		return models.FolderFilter{Scope: models.FilterAll}, nil
	case "root":
		return models.FolderFilter{Scope: models.FilterRoot}, nil
	default:
		if err := requireUUID(param); err != nil {
			return models.FolderFilter{}, &domain.ValidationError{Message: "invalid folder filter"}
		}
		return models.FolderFilter{Scope: models.FilterFolder, FolderID: param}, nil
	}
}

func requireUUID(id string) error {
	_, err := uuid.Parse(id)
	return err
}
