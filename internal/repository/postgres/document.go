package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/markdown"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new document and fills in the server-assigned fields
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, content, folder_id, share_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		doc.Title,
		doc.Content,
		doc.FolderID,
		doc.ShareID,
		doc.CreatedAt,
		doc.UpdatedAt,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("share token collision for document: %w", err)
		}
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

// GetByID retrieves a document by ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, title, content, folder_id, share_id, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Documents)

	return r.getOne(ctx, query, id)
}

// GetByShareID retrieves a document by its share token (exact, case-sensitive match)
func (r *PostgresDocumentRepository) GetByShareID(ctx context.Context, shareID string) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, title, content, folder_id, share_id, created_at, updated_at
		FROM %s
		WHERE share_id = $1
	`, r.tables.Documents)

	return r.getOne(ctx, query, shareID)
}

func (r *PostgresDocumentRepository) getOne(ctx context.Context, query, arg string) (*models.Document, error) {
	var doc models.Document
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, arg).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.FolderID,
		&doc.ShareID,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %s: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &doc, nil
}

// List returns one page of list items ordered by created_at descending
// (id ascending on ties) plus the total count under the same filter.
// Only a preview-sized slice of content leaves the database.
func (r *PostgresDocumentRepository) List(ctx context.Context, filter models.FolderFilter, offset, limit int) ([]models.DocumentListItem, int, error) {
	where := ""
	args := []interface{}{}

	switch filter.Scope {
	case models.FilterRoot:
		where = "WHERE folder_id IS NULL"
	case models.FilterFolder:
		where = "WHERE folder_id = $1"
		args = append(args, filter.FolderID)
	}

	executor := GetExecutor(ctx, r.pool)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, r.tables.Documents, where)
	var total int
	if err := executor.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	// LEFT pulls one character past the preview length so Preview can
	// tell whether the content was actually truncated.
	query := fmt.Sprintf(`
		SELECT id, title, LEFT(content, %d), folder_id, created_at, updated_at
		FROM %s
		%s
		ORDER BY created_at DESC, id ASC
		OFFSET $%d LIMIT $%d
	`, markdown.PreviewLength+1, r.tables.Documents, where, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var items []models.DocumentListItem
	for rows.Next() {
		var item models.DocumentListItem
		var snippet string
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&snippet,
			&item.FolderID,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		item.Preview = markdown.Preview(snippet)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate documents: %w", err)
	}

	return items, total, nil
}

// Update persists content, title, folder assignment and updated_at.
// share_id and created_at are never touched.
func (r *PostgresDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, content = $2, folder_id = $3, updated_at = $4
		WHERE id = $5
	`, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		doc.Title,
		doc.Content,
		doc.FolderID,
		doc.UpdatedAt,
		doc.ID,
	)

	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a document permanently
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ClearFolder reparents every document in the given folder to the root.
// Reassignment is a folder-membership change, so updated_at is bumped.
// Joins an ambient transaction when one is present in ctx.
func (r *PostgresDocumentRepository) ClearFolder(ctx context.Context, folderID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = NULL, updated_at = NOW()
		WHERE folder_id = $1
	`, r.tables.Documents)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, folderID)
	if err != nil {
		return fmt.Errorf("clear folder %s: %w", folderID, err)
	}

	r.logger.Debug("documents reparented to root",
		"folder_id", folderID,
		"count", result.RowsAffected(),
	)

	return nil
}
