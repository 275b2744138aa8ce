package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/httputil"
	"inkwell/internal/service"
)

// ShareHandler resolves public share links. No auth, no ids in the
// response: just the content, title and creation time.
type ShareHandler struct {
	docService *service.DocumentService
	logger     *slog.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(docService *service.DocumentService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		docService: docService,
		logger:     logger,
	}
}

// ResolveShare resolves a share token to the read-only document view
// GET /api/share/{token}
func (h *ShareHandler) ResolveShare(w http.ResponseWriter, r *http.Request) {
	shared, err := h.docService.ResolveShare(r.Context(), r.PathValue("token"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, shared)
}
