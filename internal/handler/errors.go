package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"inkwell/internal/domain"
	"inkwell/internal/httputil"
)

// handleError maps domain errors to HTTP responses. Anything outside the
// domain taxonomy is a storage or programming failure and surfaces as a
// generic 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
