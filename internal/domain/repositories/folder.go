package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create inserts a new folder and fills in the server-assigned fields
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// List returns all folders ordered by name ascending, each annotated
	// with its live document count
	List(ctx context.Context) ([]models.Folder, error)

	// Update persists name and updated_at
	Update(ctx context.Context, folder *models.Folder) error

	// Delete removes the folder row only. Reparenting of documents is
	// orchestrated by the service inside a transaction.
	Delete(ctx context.Context, id string) error

	// CountDocuments counts documents currently referencing the folder
	CountDocuments(ctx context.Context, id string) (int, error)
}
