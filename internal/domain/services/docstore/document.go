package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// DocumentService handles document business logic
type DocumentService interface {
	// CreateDocument registers an uploaded file in an existing folder
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*docstore.Document, error)

	// GetDocument retrieves a document by id
	GetDocument(ctx context.Context, id string) (*docstore.Document, error)

	// ListByFolder lists documents directly attached to one folder
	ListByFolder(ctx context.Context, folderID string) ([]docstore.Document, error)

	// UpdateDocument renames, retags or moves a document
	UpdateDocument(ctx context.Context, id string, req *UpdateDocumentRequest) (*docstore.Document, error)

	// DeleteDocument removes a document
	DeleteDocument(ctx context.Context, id string) error

	// Search matches the keyword case-insensitively against file names and
	// tags. A blank keyword returns the unfiltered collection.
	Search(ctx context.Context, opts *docstore.SearchOptions) (*docstore.SearchResults, error)

	// FilterByStatus returns documents whose derived status matches.
	// An unrecognized status yields an empty slice, not an error.
	FilterByStatus(ctx context.Context, status string) ([]docstore.Document, error)
}

// CreateDocumentRequest represents a document creation request
type CreateDocumentRequest struct {
	FileName   string   `json:"file_name"`
	FileType   string   `json:"file_type"`
	FileSize   int64    `json:"file_size"`
	FileURL    string   `json:"file_url"`
	FolderID   string   `json:"folder_id"`
	Tags       []string `json:"tags,omitempty"`
	UploadedBy string   `json:"uploaded_by,omitempty"`
}

// UpdateDocumentRequest represents a document update request
type UpdateDocumentRequest struct {
	FileName *string   `json:"file_name,omitempty"`
	FolderID *string   `json:"folder_id,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}
