package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/docstore"
)

// DocumentRepository implements repositories/docstore.DocumentRepository
type DocumentRepository struct {
	store *Store
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *docstore.Document) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if _, exists := s.documents[doc.ID]; exists {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("document %s already exists", doc.ID),
			ResourceType: "document",
			ResourceID:   doc.ID,
		}
	}

	now := s.now()
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	s.documents[doc.ID] = doc.Clone()
	s.docIDs = append(s.docIDs, doc.ID)
	return nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*docstore.Document, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.documents[id]
	if !exists {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return doc.Clone(), nil
}

// GetAll retrieves all documents in insertion order
func (r *DocumentRepository) GetAll(ctx context.Context) ([]docstore.Document, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]docstore.Document, 0, len(s.docIDs))
	for _, id := range s.docIDs {
		docs = append(docs, *s.documents[id].Clone())
	}
	return docs, nil
}

// ListByFolder lists documents directly attached to one folder
func (r *DocumentRepository) ListByFolder(ctx context.Context, folderID string) ([]docstore.Document, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]docstore.Document, 0)
	for _, id := range s.docIDs {
		doc := s.documents[id]
		if doc.FolderID == folderID {
			docs = append(docs, *doc.Clone())
		}
	}
	return docs, nil
}

// Update replaces a document, guarded by the UpdatedAt the caller last read
func (r *DocumentRepository) Update(ctx context.Context, doc *docstore.Document) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.documents[doc.ID]
	if !exists {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}
	if !stored.UpdatedAt.Equal(doc.UpdatedAt) {
		return &domain.StaleUpdateError{ResourceType: "document", ResourceID: doc.ID}
	}

	doc.UpdatedAt = s.now()
	s.documents[doc.ID] = doc.Clone()
	return nil
}

// Delete removes a document by id
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.documents[id]; !exists {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	delete(s.documents, id)
	s.docIDs = removeID(s.docIDs, id)
	return nil
}

// Search scans the collection in insertion order and pages the matches
func (r *DocumentRepository) Search(ctx context.Context, opts *docstore.SearchOptions) (*docstore.SearchResults, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]docstore.Document, 0)
	for _, id := range s.docIDs {
		doc := s.documents[id]
		if opts.Matches(doc) {
			matched = append(matched, *doc.Clone())
		}
	}

	total := len(matched)
	start := opts.Offset
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &docstore.SearchResults{
		Documents: matched[start:end],
		Total:     total,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}, nil
}
