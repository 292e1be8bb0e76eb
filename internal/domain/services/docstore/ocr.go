package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// OCRService drives documents through the pending -> processing ->
// {completed | failed} lifecycle and applies user corrections afterwards.
type OCRService interface {
	// ProcessDocument runs the configured engine over a document and attaches
	// the result. The document is visible as processing while the engine runs;
	// an engine error leaves it failed. No retry logic exists here.
	ProcessDocument(ctx context.Context, documentID string, docType docstore.DocumentType) (*docstore.Document, error)

	// UpdateFieldValue replaces one extracted field's value and marks the
	// field edited. Fields themselves are append-only.
	UpdateFieldValue(ctx context.Context, documentID, fieldID, value string) (*docstore.Document, error)
}
