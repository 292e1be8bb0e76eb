package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/docstore"
)

// FolderRepository implements repositories/docstore.FolderRepository
type FolderRepository struct {
	store *Store
}

// Create creates a new folder
func (r *FolderRepository) Create(ctx context.Context, folder *docstore.Folder) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	if _, exists := s.folders[folder.ID]; exists {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("folder %s already exists", folder.ID),
			ResourceType: "folder",
			ResourceID:   folder.ID,
		}
	}

	now := s.now()
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = now
	}
	if folder.UpdatedAt.IsZero() {
		folder.UpdatedAt = now
	}

	s.folders[folder.ID] = folder.Clone()
	s.folderIDs = append(s.folderIDs, folder.ID)
	return nil
}

// GetByID retrieves a folder by ID
func (r *FolderRepository) GetByID(ctx context.Context, id string) (*docstore.Folder, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, exists := s.folders[id]
	if !exists {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return folder.Clone(), nil
}

// GetAll retrieves all folders in insertion order
func (r *FolderRepository) GetAll(ctx context.Context) ([]docstore.Folder, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	folders := make([]docstore.Folder, 0, len(s.folderIDs))
	for _, id := range s.folderIDs {
		folders = append(folders, *s.folders[id].Clone())
	}
	return folders, nil
}

// ListChildren lists immediate child folders; nil selects roots
func (r *FolderRepository) ListChildren(ctx context.Context, parentID *string) ([]docstore.Folder, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make([]docstore.Folder, 0)
	for _, id := range s.folderIDs {
		folder := s.folders[id]
		if sameParent(folder.ParentID, parentID) {
			children = append(children, *folder.Clone())
		}
	}
	return children, nil
}

// Update replaces a folder, guarded by the UpdatedAt the caller last read
func (r *FolderRepository) Update(ctx context.Context, folder *docstore.Folder) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.folders[folder.ID]
	if !exists {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	if !stored.UpdatedAt.Equal(folder.UpdatedAt) {
		return &domain.StaleUpdateError{ResourceType: "folder", ResourceID: folder.ID}
	}

	folder.UpdatedAt = s.now()
	s.folders[folder.ID] = folder.Clone()
	return nil
}

// Delete removes a folder by id
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.folders[id]; !exists {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(s.folders, id)
	s.folderIDs = removeID(s.folderIDs, id)
	return nil
}
