package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
	"docuvault/internal/httputil"
)

// FolderService handles folder business logic
type FolderService interface {
	// CreateFolder creates a new folder under an existing parent (or root)
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*docstore.Folder, error)

	// GetFolder retrieves a folder with its computed path and derived counts
	GetFolder(ctx context.Context, id string) (*docstore.Folder, error)

	// ListFolders returns the full flat collection with computed paths
	ListFolders(ctx context.Context) ([]docstore.Folder, error)

	// ListChildren lists immediate child folders; nil parentID selects roots
	ListChildren(ctx context.Context, parentID *string) ([]docstore.Folder, error)

	// UpdateFolder renames, recolors or moves a folder
	UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*docstore.Folder, error)

	// DeleteFolder deletes a folder. With force unset the folder must be empty;
	// with force set, descendants and their documents cascade.
	DeleteFolder(ctx context.Context, id string, force bool) error
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name        string  `json:"name"`
	ParentID    *string `json:"parent_id,omitempty"` // null for root
	Color       string  `json:"color,omitempty"`
	MenuSection string  `json:"menu_section,omitempty"`
}

// UpdateFolderRequest represents a folder update request.
// ParentID is tri-state: absent = keep, null = move to root, value = move.
type UpdateFolderRequest struct {
	Name        *string                 `json:"name,omitempty"`
	ParentID    httputil.OptionalString `json:"parent_id,omitempty"`
	Color       *string                 `json:"color,omitempty"`
	MenuSection *string                 `json:"menu_section,omitempty"`
}
