package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) docstoreRepo.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *docstore.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	now := time.Now()
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = now
	}
	if folder.UpdatedAt.IsZero() {
		folder.UpdatedAt = now
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, parent_id, color, menu_section, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Folders)

	_, err := r.pool.Exec(ctx, query,
		folder.ID,
		folder.Name,
		folder.ParentID,
		folder.Color,
		folder.MenuSection,
		folder.CreatedAt,
		folder.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("folder %s already exists", folder.ID),
				ResourceType: "folder",
				ResourceID:   folder.ID,
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("%w: parent folder does not exist", domain.ErrValidation)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*docstore.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name, parent_id, color, menu_section, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	folder, err := scanFolder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return folder, nil
}

// GetAll retrieves all folders in insertion order
func (r *PostgresFolderRepository) GetAll(ctx context.Context) ([]docstore.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name, parent_id, color, menu_section, created_at, updated_at
		FROM %s
		ORDER BY created_at ASC, id ASC
	`, r.tables.Folders)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all folders: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

// ListChildren lists immediate child folders; nil selects roots
func (r *PostgresFolderRepository) ListChildren(ctx context.Context, parentID *string) ([]docstore.Folder, error) {
	var query string
	var rows pgx.Rows
	var err error

	if parentID == nil {
		query = fmt.Sprintf(`
			SELECT id, name, parent_id, color, menu_section, created_at, updated_at
			FROM %s
			WHERE parent_id IS NULL
			ORDER BY created_at ASC, id ASC
		`, r.tables.Folders)
		rows, err = r.pool.Query(ctx, query)
	} else {
		query = fmt.Sprintf(`
			SELECT id, name, parent_id, color, menu_section, created_at, updated_at
			FROM %s
			WHERE parent_id = $1
			ORDER BY created_at ASC, id ASC
		`, r.tables.Folders)
		rows, err = r.pool.Query(ctx, query, *parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("list child folders: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

// Update replaces a folder, guarded by the updated_at the caller last read
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *docstore.Folder) error {
	now := time.Now()
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, parent_id = $2, color = $3, menu_section = $4, updated_at = $5
		WHERE id = $6 AND updated_at = $7
	`, r.tables.Folders)

	tag, err := r.pool.Exec(ctx, query,
		folder.Name,
		folder.ParentID,
		folder.Color,
		folder.MenuSection,
		now,
		folder.ID,
		folder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Either gone or concurrently modified; look to tell which
		if _, err := r.GetByID(ctx, folder.ID); err != nil {
			return err
		}
		return &domain.StaleUpdateError{ResourceType: "folder", ResourceID: folder.ID}
	}

	folder.UpdatedAt = now
	return nil
}

// Delete removes a folder by id
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Folders)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanFolder(row pgx.Row) (*docstore.Folder, error) {
	var folder docstore.Folder
	err := row.Scan(
		&folder.ID,
		&folder.Name,
		&folder.ParentID,
		&folder.Color,
		&folder.MenuSection,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func collectFolders(rows pgx.Rows) ([]docstore.Folder, error) {
	folders := make([]docstore.Folder, 0)
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, *folder)
	}
	return folders, rows.Err()
}
