package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create creates a new document
	Create(ctx context.Context, doc *docstore.Document) error

	// GetByID retrieves a document by ID. Missing ids yield domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*docstore.Document, error)

	// GetAll retrieves the full flat document collection in insertion order
	GetAll(ctx context.Context) ([]docstore.Document, error)

	// ListByFolder lists documents whose folder_id matches exactly
	// (non-recursive: descendant folders are not expanded)
	ListByFolder(ctx context.Context, folderID string) ([]docstore.Document, error)

	// Update replaces a document with the same optimistic-concurrency
	// discipline as FolderRepository.Update.
	Update(ctx context.Context, doc *docstore.Document) error

	// Delete removes a document by id
	Delete(ctx context.Context, id string) error

	// Search returns documents matching the options, in insertion order
	Search(ctx context.Context, opts *docstore.SearchOptions) (*docstore.SearchResults, error)
}
