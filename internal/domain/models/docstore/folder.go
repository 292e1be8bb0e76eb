package docstore

import (
	"time"
)

type Folder struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	ParentID    *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Path        string    `json:"path,omitempty"`           // ancestor names joined by "/", computed
	Color       string    `json:"color,omitempty" db:"color"`
	MenuSection string    `json:"menu_section,omitempty" db:"menu_section"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Derived counts, filled by the folder service. Not stored.
	DocumentCount int `json:"document_count"`
	FolderCount   int `json:"folder_count"`
}

// Clone returns a deep copy so callers cannot mutate store-owned records.
func (f *Folder) Clone() *Folder {
	c := *f
	if f.ParentID != nil {
		parentID := *f.ParentID
		c.ParentID = &parentID
	}
	return &c
}

type CreateFolderRequest struct {
	Name        string  `json:"name"`
	ParentID    *string `json:"parent_id,omitempty"` // null for root
	Color       string  `json:"color,omitempty"`
	MenuSection string  `json:"menu_section,omitempty"`
}

type UpdateFolderRequest struct {
	Name        *string `json:"name,omitempty"`         // rename
	Color       *string `json:"color,omitempty"`        //
	MenuSection *string `json:"menu_section,omitempty"` //
}
