package handler

import (
	"log/slog"
	"net/http"
	"strings"

	models "docuvault/internal/domain/models/settings"
	settingsRepo "docuvault/internal/domain/repositories/settings"
	"docuvault/internal/httputil"
)

// ConnectionHandler handles saved-connection HTTP requests
type ConnectionHandler struct {
	store  settingsRepo.ConnectionStore
	logger *slog.Logger
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(store settingsRepo.ConnectionStore, logger *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		store:  store,
		logger: logger,
	}
}

// ListConnections lists all saved connections
// GET /api/connections
func (h *ConnectionHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	connections, err := h.store.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, connections)
}

// GetConnection retrieves one saved connection
// GET /api/connections/{id}
func (h *ConnectionHandler) GetConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, conn)
}

// SaveConnection saves a new connection
// POST /api/connections
func (h *ConnectionHandler) SaveConnection(w http.ResponseWriter, r *http.Request) {
	var req models.SaveConnectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.EnvironmentURL) == "" {
		httputil.RespondError(w, http.StatusBadRequest, "name and environment_url are required")
		return
	}

	conn := &models.Connection{
		Name:           strings.TrimSpace(req.Name),
		EnvironmentURL: strings.TrimSpace(req.EnvironmentURL),
		TenantID:       strings.TrimSpace(req.TenantID),
	}
	if err := h.store.Save(r.Context(), conn); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, conn)
}

// DeleteConnection removes a saved connection
// DELETE /api/connections/{id}
func (h *ConnectionHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActivateConnection marks a saved connection as active
// PUT /api/connections/{id}/activate
func (h *ConnectionHandler) ActivateConnection(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetActive(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetActiveConnection returns the active connection, 404 when none is set
// GET /api/connections/active
func (h *ConnectionHandler) GetActiveConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.store.GetActive(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, conn)
}
