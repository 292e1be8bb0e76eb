// Package memory implements the docstore repositories over in-process maps.
// It backs local development and tests, and mirrors the mock collections the
// web client ships with: insertion order is observable, so each collection
// keeps an id slice alongside its map.
package memory

import (
	"sync"
	"time"

	"docuvault/internal/domain/models/docstore"
)

// Store owns both collections under one lock so cross-collection reads
// (tree building, stats) see a consistent snapshot.
type Store struct {
	mu sync.RWMutex

	folders   map[string]*docstore.Folder
	folderIDs []string // insertion order

	documents map[string]*docstore.Document
	docIDs    []string // insertion order

	now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		folders:   make(map[string]*docstore.Folder),
		documents: make(map[string]*docstore.Document),
		now:       time.Now,
	}
}

// Folders returns the folder repository view of the store
func (s *Store) Folders() *FolderRepository {
	return &FolderRepository{store: s}
}

// Documents returns the document repository view of the store
func (s *Store) Documents() *DocumentRepository {
	return &DocumentRepository{store: s}
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
