package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/httputil"
	"inkwell/internal/service"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService *service.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService *service.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

type folderRequest struct {
	Name string `json:"name"`
}

// ListFolders lists all folders with live document counts
// GET /api/folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folderService.List(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// CreateFolder creates a new folder
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.Create(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// UpdateFolder renames a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.Update(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder deletes a folder, reparenting its documents to the root
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.folderService.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
