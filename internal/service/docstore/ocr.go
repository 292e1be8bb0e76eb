package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docuvault/internal/config"
	"docuvault/internal/domain"
	models "docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
	ocrSvc "docuvault/internal/domain/services/ocr"
)

// ocrService implements the OCRService interface
type ocrService struct {
	docRepo docstoreRepo.DocumentRepository
	engine  ocrSvc.Engine
	logger  *slog.Logger
}

// NewOCRService creates a new OCR service
func NewOCRService(
	docRepo docstoreRepo.DocumentRepository,
	engine ocrSvc.Engine,
	logger *slog.Logger,
) docstoreSvc.OCRService {
	return &ocrService{
		docRepo: docRepo,
		engine:  engine,
		logger:  logger,
	}
}

// ProcessDocument runs the engine over a document and attaches the result.
// The document is written back as processing before the engine runs, so
// concurrent readers observe the lifecycle instead of a silent jump from
// pending to completed. An engine failure lands the document in failed and is
// not an error to the caller; the failure is part of the document's state.
func (s *ocrService) ProcessDocument(ctx context.Context, documentID string, docType models.DocumentType) (*models.Document, error) {
	if docType == "" {
		docType = models.DocTypeInvoice
	}
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: unknown document type %q", domain.ErrValidation, docType)
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	doc.OCRResult = &models.OCRResult{
		ID:         uuid.NewString(),
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		Fields:     []models.OCRField{},
		Status:     models.StatusProcessing,
	}
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	result, err := s.engine.Extract(ctx, &ocrSvc.ExtractRequest{
		Document:     doc,
		DocumentType: docType,
	})
	if err != nil {
		now := time.Now()
		doc.OCRResult.Status = models.StatusFailed
		doc.OCRResult.ProcessedAt = &now
		if updateErr := s.docRepo.Update(ctx, doc); updateErr != nil {
			return nil, updateErr
		}
		s.logger.Warn("ocr extraction failed",
			"document_id", doc.ID,
			"engine", s.engine.Name(),
			"error", err,
		)
		return doc, nil
	}

	result.ID = doc.OCRResult.ID
	result.DocumentID = doc.ID
	result.FileName = doc.FileName
	doc.OCRResult = result
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("ocr extraction completed",
		"document_id", doc.ID,
		"engine", s.engine.Name(),
		"field_count", len(result.Fields),
		"overall_confidence", result.OverallConfidence,
	)
	return doc, nil
}

// UpdateFieldValue replaces one extracted field's value and marks it edited
func (s *ocrService) UpdateFieldValue(ctx context.Context, documentID, fieldID, value string) (*models.Document, error) {
	if len(value) > config.MaxFieldValueLength {
		return nil, fmt.Errorf("%w: field value exceeds %d characters", domain.ErrValidation, config.MaxFieldValueLength)
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.OCRResult == nil {
		return nil, fmt.Errorf("%w: document %s has no extraction result", domain.ErrValidation, documentID)
	}

	field := doc.OCRResult.Field(fieldID)
	if field == nil {
		return nil, fmt.Errorf("field %s: %w", fieldID, domain.ErrNotFound)
	}
	field.Value = value
	field.IsEdited = true

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("ocr field edited", "document_id", documentID, "field_id", fieldID)
	return doc, nil
}
