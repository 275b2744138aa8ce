package postgres

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// ApplyMigrations applies all embedded migrations that have not been
// recorded yet. Each migration runs in its own transaction together with
// its bookkeeping row. The literal "{prefix}" in migration SQL is replaced
// with the configured table prefix so every environment migrates its own
// tables.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, tablePrefix string) error {
	if err := ensureMigrationsTable(ctx, pool, tablePrefix); err != nil {
		return err
	}

	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrationsTable := tablePrefix + "schema_migrations"

	for _, version := range names {
		if migrated, err := isMigrated(ctx, pool, migrationsTable, version); err != nil {
			return err
		} else if migrated {
			continue
		}

		contents, err := migrationFiles.ReadFile("migrations/" + version)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", version, err)
		}
		sql := strings.ReplaceAll(string(contents), "{prefix}", tablePrefix)

		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migration tx %s: %w", version, err)
		}

		if _, err := tx.Exec(ctx, sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("execute migration %s: %w", version, err)
		}

		record := fmt.Sprintf(`INSERT INTO %s (version) VALUES ($1)`, migrationsTable)
		if _, err := tx.Exec(ctx, record, version); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record migration %s: %w", version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %s: %w", version, err)
		}
	}

	return nil
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool, tablePrefix string) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %sschema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`, tablePrefix)
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	return nil
}

func isMigrated(ctx context.Context, pool *pgxpool.Pool, table, version string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE version = $1)`, table)

	var exists bool
	if err := pool.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
	return exists, nil
}
