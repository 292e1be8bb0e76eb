package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// TreeService defines operations for building folder/document trees
type TreeService interface {
	// BuildTree builds the nested tree for the whole store. The flat parent
	// graph is validated first: a cyclic parent chain yields a CycleError and
	// a parent_id referencing no known folder yields a DanglingParentError,
	// rather than unbounded recursion or silently corrupted output.
	BuildTree(ctx context.Context) (*docstore.Tree, error)

	// BuildSubtree builds the tree rooted at one folder
	BuildSubtree(ctx context.Context, folderID string) (*docstore.FolderTreeNode, error)

	// DescendantIDs returns the ids of a folder and all folders below it
	DescendantIDs(ctx context.Context, folderID string) ([]string, error)
}
