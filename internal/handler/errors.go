package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"docuvault/internal/domain"
	"docuvault/internal/httputil"
)

// handleError maps domain errors to HTTP responses. Typed errors carry their
// own status; sentinels cover errors wrapped with fmt.Errorf. Anything
// unmapped is a 500 and gets logged with detail withheld from the client.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrStale):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
