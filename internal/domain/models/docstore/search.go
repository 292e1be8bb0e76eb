package docstore

import (
	"fmt"
	"strings"
)

// Default search configuration values
const (
	DefaultSearchLimit  = 50
	DefaultSearchOffset = 0
	MaxSearchLimit      = 200
)

// SearchOptions configures how documents are searched.
// A keyword matches case-insensitively against the file name or any tag.
// A blank or whitespace-only keyword matches everything, so searching with an
// empty box returns the unfiltered collection instead of nothing.
type SearchOptions struct {
	// Keyword is the substring to match (optional)
	Keyword string

	// FolderID optionally limits the search to one folder (non-recursive)
	FolderID *string

	// Status optionally limits results to one derived processing status.
	// An unrecognized status matches nothing.
	Status string

	// Pagination
	Limit  int
	Offset int
}

// ApplyDefaults fills in default values for unset fields.
func (opts *SearchOptions) ApplyDefaults() {
	if opts.Limit <= 0 {
		opts.Limit = DefaultSearchLimit
	}
	if opts.Offset < 0 {
		opts.Offset = DefaultSearchOffset
	}
}

// Validate checks that values are reasonable.
func (opts *SearchOptions) Validate() error {
	if opts.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if opts.Limit > MaxSearchLimit {
		return fmt.Errorf("limit cannot exceed %d (requested: %d)", MaxSearchLimit, opts.Limit)
	}
	if opts.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	return nil
}

// Matches reports whether the document satisfies the keyword, folder and
// status constraints. Pagination is applied by the caller.
func (opts *SearchOptions) Matches(doc *Document) bool {
	if opts.FolderID != nil && doc.FolderID != *opts.FolderID {
		return false
	}
	if opts.Status != "" {
		status, ok := ParseStatus(opts.Status)
		if !ok || doc.Status() != status {
			return false
		}
	}
	keyword := strings.TrimSpace(opts.Keyword)
	if keyword == "" {
		return true
	}
	lower := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(doc.FileName), lower) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	return false
}

// SearchResults is a page of matching documents.
type SearchResults struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"` // total matches before pagination
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}
