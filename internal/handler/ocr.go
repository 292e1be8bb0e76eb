package handler

import (
	"log/slog"
	"net/http"

	models "docuvault/internal/domain/models/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
	"docuvault/internal/httputil"
)

// OCRHandler handles OCR HTTP requests
type OCRHandler struct {
	ocrService docstoreSvc.OCRService
	logger     *slog.Logger
}

// NewOCRHandler creates a new OCR handler
func NewOCRHandler(ocrService docstoreSvc.OCRService, logger *slog.Logger) *OCRHandler {
	return &OCRHandler{
		ocrService: ocrService,
		logger:     logger,
	}
}

type processRequest struct {
	DocumentType models.DocumentType `json:"document_type,omitempty"`
}

type updateFieldRequest struct {
	Value string `json:"value"`
}

// ProcessDocument runs OCR extraction over a document. The call is
// synchronous; the response carries the document in its final state
// (completed or failed).
// POST /api/documents/{id}/ocr
func (h *OCRHandler) ProcessDocument(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if r.ContentLength > 0 {
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	doc, err := h.ocrService.ProcessDocument(r.Context(), r.PathValue("id"), req.DocumentType)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// UpdateField replaces one extracted field's value and marks it edited
// PATCH /api/documents/{id}/ocr/fields/{field_id}
func (h *OCRHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req updateFieldRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.ocrService.UpdateFieldValue(r.Context(), r.PathValue("id"), r.PathValue("field_id"), req.Value)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
