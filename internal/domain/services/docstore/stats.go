package docstore

import (
	"context"

	"docuvault/internal/domain/models/docstore"
)

// StatsService computes per-folder and global document statistics
type StatsService interface {
	// FolderStats counts a folder's directly-attached documents by derived
	// status. Aggregation never fails: an unknown folder id or an empty
	// document set yields all-zero stats.
	FolderStats(ctx context.Context, folderID string) (*docstore.FolderStats, error)

	// AllFoldersWithStats applies FolderStats to every folder independently.
	// Parents are not rolled up over their subtrees.
	AllFoldersWithStats(ctx context.Context) ([]docstore.FolderWithStats, error)

	// GlobalStats aggregates the whole collection
	GlobalStats(ctx context.Context) (*docstore.GlobalStats, error)
}
