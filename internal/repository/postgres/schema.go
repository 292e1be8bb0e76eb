package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the folder and document tables if they do not exist.
// Ids are client-generated uuid strings so the memory and postgres backends
// behave identically.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				parent_id TEXT REFERENCES %s(id),
				color VARCHAR(32) NOT NULL DEFAULT '',
				menu_section VARCHAR(64) NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_parent_idx ON %s (parent_id)
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				file_name VARCHAR(255) NOT NULL,
				file_type VARCHAR(64) NOT NULL DEFAULT '',
				file_size BIGINT NOT NULL DEFAULT 0,
				file_url TEXT NOT NULL DEFAULT '',
				folder_id TEXT NOT NULL REFERENCES %s(id),
				tags TEXT[] NOT NULL DEFAULT '{}',
				uploaded_by VARCHAR(255) NOT NULL DEFAULT '',
				ocr_result JSONB,
				uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Documents, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_folder_idx ON %s (folder_id)
		`, tables.Documents, tables.Documents),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropTables removes both tables. Used by the seeder's --drop-tables flag.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmt := fmt.Sprintf(`DROP TABLE IF EXISTS %s, %s CASCADE`, tables.Documents, tables.Folders)
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}
