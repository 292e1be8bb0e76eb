package handler

import (
	"log/slog"
	"net/http"

	docstoreSvc "docuvault/internal/domain/services/docstore"
	"docuvault/internal/httputil"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService docstoreSvc.StatsService
	logger       *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService docstoreSvc.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetFolderStats returns one folder's direct document counts by status
// GET /api/folders/{id}/stats
func (h *StatsHandler) GetFolderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.FolderStats(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}

// GetAllFolderStats returns every folder with its stats
// GET /api/folders/stats
func (h *StatsHandler) GetAllFolderStats(w http.ResponseWriter, r *http.Request) {
	folders, err := h.statsService.AllFoldersWithStats(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// GetGlobalStats returns whole-collection totals
// GET /api/stats
func (h *StatsHandler) GetGlobalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GlobalStats(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}
