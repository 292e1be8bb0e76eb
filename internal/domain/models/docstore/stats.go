package docstore

// FolderStats counts a folder's directly-attached documents by derived status.
// Total always equals the sum of the four buckets.
type FolderStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Failed     int `json:"failed"`
}

// Add counts one document status into the stats.
func (s *FolderStats) Add(status ProcessingStatus) {
	s.Total++
	switch status {
	case StatusCompleted:
		s.Completed++
	case StatusProcessing:
		s.Processing++
	case StatusFailed:
		s.Failed++
	default:
		// pending, and anything unreachable, counts as pending so the
		// sum invariant holds
		s.Pending++
	}
}

// FolderWithStats pairs a folder with the stats of its own documents.
// Stats are not rolled up to ancestors; a parent reflects only documents
// attached to it directly.
type FolderWithStats struct {
	Folder
	Stats FolderStats `json:"stats"`
}

// GlobalStats aggregates the whole document collection.
type GlobalStats struct {
	FolderCount int         `json:"folder_count"`
	Documents   FolderStats `json:"documents"`
}
