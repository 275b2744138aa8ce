package handler

import (
	"io"
	"log/slog"
	"net/http"

	"inkwell/internal/assets"
	"inkwell/internal/config"
	"inkwell/internal/httputil"
)

// AssetHandler handles image upload and retrieval
type AssetHandler struct {
	assetService *assets.Service
	logger       *slog.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *assets.Service, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		logger:       logger,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadAsset accepts a multipart image upload and returns its relative URL
// POST /api/assets
func (h *AssetHandler) UploadAsset(w http.ResponseWriter, r *http.Request) {
	// One extra byte so an oversized body parses instead of erroring,
	// letting the service report the limit cleanly
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	url, err := h.assetService.Upload(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

// ServeAsset streams a stored asset back to the client
// GET /assets/{name}
func (h *AssetHandler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	reader, contentType, err := h.assetService.Open(r.Context(), r.PathValue("name"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("asset stream interrupted", "name", r.PathValue("name"), "error", err)
	}
}
