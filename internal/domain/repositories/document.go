package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create inserts a new document and fills in the server-assigned fields
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id string) (*models.Document, error)

	// GetByShareID retrieves a document by its share token (exact match)
	GetByShareID(ctx context.Context, shareID string) (*models.Document, error)

	// List returns one page of list items ordered by created_at descending
	// (id ascending on ties) plus the total count under the same filter
	List(ctx context.Context, filter models.FolderFilter, offset, limit int) ([]models.DocumentListItem, int, error)

	// Update persists content, title, folder assignment and updated_at
	Update(ctx context.Context, doc *models.Document) error

	// Delete removes a document permanently
	Delete(ctx context.Context, id string) error

	// ClearFolder reparents every document in the given folder to the root.
	// Participates in an ambient transaction when one is present in ctx.
	ClearFolder(ctx context.Context, folderID string) error
}
