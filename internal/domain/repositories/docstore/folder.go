package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *docstore.Folder) error

	// GetByID retrieves a folder by ID. A missing id yields domain.ErrNotFound,
	// never a panic; callers treat absence as a normal outcome.
	GetByID(ctx context.Context, id string) (*docstore.Folder, error)

	// GetAll retrieves the full flat folder collection in insertion order
	GetAll(ctx context.Context) ([]docstore.Folder, error)

	// ListChildren lists folders whose parent_id matches exactly.
	// nil selects root folders.
	ListChildren(ctx context.Context, parentID *string) ([]docstore.Folder, error)

	// Update replaces a folder. The folder's UpdatedAt must carry the value the
	// caller last read; a mismatch fails with a StaleUpdateError. On success the
	// stored UpdatedAt is advanced and written back to the passed folder.
	Update(ctx context.Context, folder *docstore.Folder) error

	// Delete removes a folder by id
	Delete(ctx context.Context, id string) error
}
