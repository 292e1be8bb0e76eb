package ocr

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// Engine extracts structured fields from a document image. Real inference
// lives behind an external service; the in-tree implementation is a mock that
// produces plausible fields with bounding boxes and confidences.
type Engine interface {
	// Name returns the engine name
	Name() string

	// Extract produces an OCR result for the document. The returned result is
	// fully populated (fields, overall confidence, processed-at) with status
	// completed; a non-nil error means the extraction failed.
	Extract(ctx context.Context, req *ExtractRequest) (*docstore.OCRResult, error)
}

// ExtractRequest carries the document metadata the engine works from.
type ExtractRequest struct {
	Document     *docstore.Document
	DocumentType docstore.DocumentType
}
