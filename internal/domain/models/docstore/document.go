package docstore

import (
	"strings"
	"time"
)

type Document struct {
	ID         string     `json:"id" db:"id"`
	FileName   string     `json:"file_name" db:"file_name"`
	FileType   string     `json:"file_type" db:"file_type"`
	FileSize   int64      `json:"file_size" db:"file_size"`
	FileURL    string     `json:"file_url" db:"file_url"`
	FolderID   string     `json:"folder_id" db:"folder_id"` // must reference an existing folder
	Tags       []string   `json:"tags" db:"tags"`
	UploadedBy string     `json:"uploaded_by" db:"uploaded_by"`
	OCRResult  *OCRResult `json:"ocr_result,omitempty"` // nil until processing has produced a result
	UploadedAt time.Time  `json:"uploaded_at" db:"uploaded_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// Status derives the processing status of the document. A document with no OCR
// result is pending; otherwise the attached result decides. The four buckets
// are mutually exclusive and exhaustive over all reachable states.
func (d *Document) Status() ProcessingStatus {
	if d.OCRResult == nil {
		return StatusPending
	}
	return d.OCRResult.Status
}

// HasTag reports whether any tag matches, case-insensitively.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate store-owned records.
func (d *Document) Clone() *Document {
	c := *d
	if d.Tags != nil {
		c.Tags = append([]string(nil), d.Tags...)
	}
	if d.OCRResult != nil {
		c.OCRResult = d.OCRResult.Clone()
	}
	return &c
}

type CreateDocumentRequest struct {
	FileName   string   `json:"file_name"`
	FileType   string   `json:"file_type"`
	FileSize   int64    `json:"file_size"`
	FileURL    string   `json:"file_url"`
	FolderID   string   `json:"folder_id"`
	Tags       []string `json:"tags,omitempty"`
	UploadedBy string   `json:"uploaded_by,omitempty"`
}

type UpdateDocumentRequest struct {
	FileName *string   `json:"file_name,omitempty"` // rename
	FolderID *string   `json:"folder_id,omitempty"` // move
	Tags     *[]string `json:"tags,omitempty"`      // replace tag set
}
