package handler

import (
	"log/slog"
	"net/http"

	models "docuvault/internal/domain/models/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
	"docuvault/internal/httputil"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService docstoreSvc.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService docstoreSvc.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// CreateDocument registers an uploaded file
// POST /api/documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req docstoreSvc.CreateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.docService.CreateDocument(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// GetDocument retrieves a document by id
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.docService.GetDocument(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListDocuments lists documents. ?folder_id= scopes to one folder
// (non-recursive); ?status= filters by derived status, where an unknown
// status yields an empty list. Without filters the whole collection pages
// through the search path.
// GET /api/documents
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if folderID := query.Get("folder_id"); folderID != "" {
		docs, err := h.docService.ListByFolder(r.Context(), folderID)
		if err != nil {
			handleError(w, h.logger, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, docs)
		return
	}

	if status := query.Get("status"); status != "" {
		docs, err := h.docService.FilterByStatus(r.Context(), status)
		if err != nil {
			handleError(w, h.logger, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, docs)
		return
	}

	results, err := h.docService.Search(r.Context(), &models.SearchOptions{
		Limit:  queryInt(r, "limit", models.DefaultSearchLimit),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, results)
}

// ListDocumentsInFolder lists documents directly attached to one folder
// GET /api/folders/{id}/documents
func (h *DocumentHandler) ListDocumentsInFolder(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docService.ListByFolder(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}

// SearchDocuments searches by keyword with optional folder and status filters
// GET /api/documents/search?q=...&folder_id=...&status=...&limit=...&offset=...
func (h *DocumentHandler) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := &models.SearchOptions{
		Keyword: query.Get("q"),
		Status:  query.Get("status"),
		Limit:   queryInt(r, "limit", models.DefaultSearchLimit),
		Offset:  queryInt(r, "offset", 0),
	}
	if folderID := query.Get("folder_id"); folderID != "" {
		opts.FolderID = &folderID
	}

	results, err := h.docService.Search(r.Context(), opts)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, results)
}

// UpdateDocument renames, retags or moves a document
// PATCH /api/documents/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req docstoreSvc.UpdateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.docService.UpdateDocument(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument removes a document
// DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.docService.DeleteDocument(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
