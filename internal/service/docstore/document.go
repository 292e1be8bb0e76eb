package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"docuvault/internal/config"
	"docuvault/internal/domain"
	models "docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
)

// documentService implements the DocumentService interface
type documentService struct {
	folderRepo docstoreRepo.FolderRepository
	docRepo    docstoreRepo.DocumentRepository
	logger     *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	folderRepo docstoreRepo.FolderRepository,
	docRepo docstoreRepo.DocumentRepository,
	logger *slog.Logger,
) docstoreSvc.DocumentService {
	return &documentService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// CreateDocument registers an uploaded file in an existing folder
func (s *documentService) CreateDocument(ctx context.Context, req *docstoreSvc.CreateDocumentRequest) (*models.Document, error) {
	fileName := strings.TrimSpace(req.FileName)
	if err := validateSimpleName(fileName, config.MaxFileNameLength); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if req.FolderID == "" {
		return nil, fmt.Errorf("%w: folder_id is required", domain.ErrValidation)
	}
	if req.FileSize < 0 {
		return nil, fmt.Errorf("%w: file_size cannot be negative", domain.ErrValidation)
	}

	if _, err := s.folderRepo.GetByID(ctx, req.FolderID); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: folder %s not found", domain.ErrValidation, req.FolderID)
		}
		return nil, err
	}

	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc := &models.Document{
		FileName:   fileName,
		FileType:   strings.ToLower(strings.TrimSpace(req.FileType)),
		FileSize:   req.FileSize,
		FileURL:    req.FileURL,
		FolderID:   req.FolderID,
		Tags:       tags,
		UploadedBy: req.UploadedBy,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"document_id", doc.ID,
		"file_name", doc.FileName,
		"folder_id", doc.FolderID,
	)
	return doc, nil
}

// GetDocument retrieves a document by id
func (s *documentService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

// ListByFolder lists documents directly attached to one folder
func (s *documentService) ListByFolder(ctx context.Context, folderID string) ([]models.Document, error) {
	return s.docRepo.ListByFolder(ctx, folderID)
}

// UpdateDocument renames, retags or moves a document
func (s *documentService) UpdateDocument(ctx context.Context, id string, req *docstoreSvc.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FileName != nil {
		fileName := strings.TrimSpace(*req.FileName)
		if err := validateSimpleName(fileName, config.MaxFileNameLength); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		doc.FileName = fileName
	}
	if req.FolderID != nil && *req.FolderID != doc.FolderID {
		if _, err := s.folderRepo.GetByID(ctx, *req.FolderID); err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: folder %s not found", domain.ErrValidation, *req.FolderID)
			}
			return nil, err
		}
		doc.FolderID = *req.FolderID
	}
	if req.Tags != nil {
		tags, err := normalizeTags(*req.Tags)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		doc.Tags = tags
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document updated", "document_id", doc.ID, "file_name", doc.FileName)
	return doc, nil
}

// DeleteDocument removes a document
func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("document deleted", "document_id", id)
	return nil
}

// Search matches the keyword case-insensitively against file names and tags
func (s *documentService) Search(ctx context.Context, opts *models.SearchOptions) (*models.SearchResults, error) {
	return s.docRepo.Search(ctx, opts)
}

// FilterByStatus returns documents whose derived status matches.
// An unrecognized status yields an empty slice, not an error.
func (s *documentService) FilterByStatus(ctx context.Context, status string) ([]models.Document, error) {
	parsed, ok := models.ParseStatus(status)
	if !ok {
		return []models.Document{}, nil
	}

	docs, err := s.docRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Document, 0)
	for i := range docs {
		if docs[i].Status() == parsed {
			matched = append(matched, docs[i])
		}
	}
	return matched, nil
}
