package docstore

import "time"

// Tree is the root of the folder/document tree.
type Tree struct {
	Folders   []*FolderTreeNode  `json:"folders"`
	Documents []DocumentTreeNode `json:"documents"`
}

// FolderTreeNode is a folder decorated with its recursively resolved children.
// Children keep the relative order of the flat source collection.
type FolderTreeNode struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	ParentID    *string            `json:"parent_id"`
	Path        string             `json:"path,omitempty"`
	Color       string             `json:"color,omitempty"`
	MenuSection string             `json:"menu_section,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Folders     []*FolderTreeNode  `json:"folders"` // pointers for proper nesting
	Documents   []DocumentTreeNode `json:"documents"`
}

// DocumentTreeNode is a document in the tree (metadata only, no OCR fields).
type DocumentTreeNode struct {
	ID        string           `json:"id"`
	FileName  string           `json:"file_name"`
	FileType  string           `json:"file_type"`
	FolderID  string           `json:"folder_id"`
	Status    ProcessingStatus `json:"status"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CountFolders returns the number of folder nodes in the tree, visiting every
// node exactly once. For any acyclic parent graph this equals the size of the
// flat folder collection.
func (t *Tree) CountFolders() int {
	n := 0
	var walk func(nodes []*FolderTreeNode)
	walk = func(nodes []*FolderTreeNode) {
		for _, node := range nodes {
			n++
			walk(node.Folders)
		}
	}
	walk(t.Folders)
	return n
}
