package docstore

import (
	"time"
)

// ProcessingStatus is the OCR lifecycle state of a document.
// Transitions are pending -> processing -> {completed | failed}, asserted by
// whichever engine performs the extraction and observed passively by readers.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// Statuses lists all processing statuses in lifecycle order.
var Statuses = []ProcessingStatus{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}

// Valid reports whether s is one of the four known statuses.
func (s ProcessingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// ParseStatus converts a raw string to a ProcessingStatus.
// Unrecognized input yields ok=false, not an error; callers filtering by an
// unknown status get an empty result set.
func ParseStatus(raw string) (ProcessingStatus, bool) {
	s := ProcessingStatus(raw)
	return s, s.Valid()
}

// FieldType classifies an extracted OCR field value.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeDate   FieldType = "date"
	FieldTypeNumber FieldType = "number"
)

// BoundingBox locates a field on the source image, in pixel space.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OCRField is one extracted label/value pair. Fields are append-only once
// produced by the engine; IsEdited flips when a user corrects Value.
type OCRField struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Value       string      `json:"value"`
	Confidence  float64     `json:"confidence"` // 0.0 - 1.0
	BoundingBox BoundingBox `json:"bounding_box"`
	Type        FieldType   `json:"type"`
	IsEdited    bool        `json:"is_edited"`
}

// OCRResult is the structured extraction output for one document (one-to-one).
type OCRResult struct {
	ID                string           `json:"id"`
	DocumentID        string           `json:"document_id"`
	FileName          string           `json:"file_name"`
	Fields            []OCRField       `json:"fields"`
	Status            ProcessingStatus `json:"status"`
	OverallConfidence float64          `json:"overall_confidence"` // 0.0 - 1.0
	ProcessedAt       *time.Time       `json:"processed_at,omitempty"`
}

// Clone returns a deep copy of the result.
func (r *OCRResult) Clone() *OCRResult {
	c := *r
	if r.Fields != nil {
		c.Fields = append([]OCRField(nil), r.Fields...)
	}
	if r.ProcessedAt != nil {
		t := *r.ProcessedAt
		c.ProcessedAt = &t
	}
	return &c
}

// Field returns the field with the given id, or nil.
func (r *OCRResult) Field(fieldID string) *OCRField {
	for i := range r.Fields {
		if r.Fields[i].ID == fieldID {
			return &r.Fields[i]
		}
	}
	return nil
}

// DocumentType hints the mock engine at which field template to extract.
type DocumentType string

const (
	DocTypeInvoice  DocumentType = "invoice"
	DocTypeReceipt  DocumentType = "receipt"
	DocTypeContract DocumentType = "contract"
	DocTypeForm     DocumentType = "form"
	DocTypeOther    DocumentType = "other"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case DocTypeInvoice, DocTypeReceipt, DocTypeContract, DocTypeForm, DocTypeOther:
		return true
	}
	return false
}
