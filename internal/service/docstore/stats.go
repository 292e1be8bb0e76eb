package docstore

import (
	"context"
	"log/slog"

	models "docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
)

// statsService implements the StatsService interface
type statsService struct {
	folderRepo docstoreRepo.FolderRepository
	docRepo    docstoreRepo.DocumentRepository
	logger     *slog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	folderRepo docstoreRepo.FolderRepository,
	docRepo docstoreRepo.DocumentRepository,
	logger *slog.Logger,
) docstoreSvc.StatsService {
	return &statsService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// FolderStats counts the folder's directly-attached documents by derived
// status. An unknown folder id simply has no documents, so it yields all-zero
// stats rather than an error.
func (s *statsService) FolderStats(ctx context.Context, folderID string) (*models.FolderStats, error) {
	docs, err := s.docRepo.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	stats := &models.FolderStats{}
	for i := range docs {
		stats.Add(docs[i].Status())
	}
	return stats, nil
}

// AllFoldersWithStats computes stats for every folder in one pass over the
// document collection. Stats are per-folder only; parents do not include
// their subtrees.
func (s *statsService) AllFoldersWithStats(ctx context.Context) ([]models.FolderWithStats, error) {
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byFolder := make(map[string]*models.FolderStats, len(folders))
	for i := range folders {
		byFolder[folders[i].ID] = &models.FolderStats{}
	}
	for i := range docs {
		if stats, ok := byFolder[docs[i].FolderID]; ok {
			stats.Add(docs[i].Status())
		}
	}

	childCounts := make(map[string]int, len(folders))
	for i := range folders {
		if folders[i].ParentID != nil {
			childCounts[*folders[i].ParentID]++
		}
	}

	result := make([]models.FolderWithStats, 0, len(folders))
	for i := range folders {
		folder := folders[i]
		stats := byFolder[folder.ID]
		folder.DocumentCount = stats.Total
		folder.FolderCount = childCounts[folder.ID]
		result = append(result, models.FolderWithStats{
			Folder: folder,
			Stats:  *stats,
		})
	}
	return result, nil
}

// GlobalStats aggregates the whole collection
func (s *statsService) GlobalStats(ctx context.Context) (*models.GlobalStats, error) {
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	global := &models.GlobalStats{FolderCount: len(folders)}
	for i := range docs {
		global.Documents.Add(docs[i].Status())
	}
	return global, nil
}
