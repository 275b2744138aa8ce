package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new folder and fills in the server-assigned fields
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		folder.Name,
		folder.CreatedAt,
		folder.UpdatedAt,
	).Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	var folder models.Folder
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&folder.ID,
		&folder.Name,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// List returns all folders ordered by name ascending, each annotated with
// its live document count.
func (r *PostgresFolderRepository) List(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.name, f.created_at, f.updated_at,
		       (SELECT COUNT(*) FROM %s d WHERE d.folder_id = f.id)
		FROM %s f
		ORDER BY f.name ASC
	`, r.tables.Documents, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(
			&folder.ID,
			&folder.Name,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.DocumentCount,
		); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// Update persists name and updated_at
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		folder.Name,
		folder.UpdatedAt,
		folder.ID,
	)

	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the folder row only. The service runs this together with
// DocumentRepository.ClearFolder inside one transaction.
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountDocuments counts documents currently referencing the folder
func (r *PostgresFolderRepository) CountDocuments(ctx context.Context, id string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s WHERE folder_id = $1
	`, r.tables.Documents)

	var count int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count documents in folder %s: %w", id, err)
	}

	return count, nil
}
