package handler

import (
	"log/slog"
	"net/http"

	docstoreSvc "docuvault/internal/domain/services/docstore"
	"docuvault/internal/httputil"
)

// TreeHandler handles tree HTTP requests
type TreeHandler struct {
	treeService docstoreSvc.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService docstoreSvc.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetTree returns the nested folder/document tree for the whole store.
// Corrupt parent graphs (cycles, dangling parents) come back as 422.
// GET /api/tree
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.treeService.BuildTree(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// GetSubtree returns the tree rooted at one folder
// GET /api/folders/{id}/tree
func (h *TreeHandler) GetSubtree(w http.ResponseWriter, r *http.Request) {
	node, err := h.treeService.BuildSubtree(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}
