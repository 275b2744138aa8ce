package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/httputil"
	"inkwell/internal/service"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService *service.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService *service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

type createDocumentRequest struct {
	Content string `json:"content"`
}

type updateDocumentRequest struct {
	Content *string `json:"content"`
}

type moveDocumentRequest struct {
	FolderID *string `json:"folder_id"`
}

type moveDocumentResponse struct {
	ID       string  `json:"id"`
	FolderID *string `json:"folder_id"`
}

// CreateDocument creates a new document
// POST /api/documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.docService.Create(r.Context(), req.Content)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// ListDocuments lists documents with pagination and an optional folder filter
// GET /api/documents?page=0&page_size=20&folder=root|<id>
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid page")
		return
	}
	pageSize, err := queryInt(r, "page_size", config.DefaultPageSize)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid page_size")
		return
	}

	filter, err := service.ParseFolderFilter(r.URL.Query().Get("folder"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	result, err := h.docService.List(r.Context(), page, pageSize, filter)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// GetDocument retrieves a document by ID
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.docService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// UpdateDocument replaces a document's content
// PATCH /api/documents/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req updateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Content == nil {
		httputil.RespondError(w, http.StatusBadRequest, "content is required")
		return
	}

	doc, err := h.docService.Update(r.Context(), r.PathValue("id"), *req.Content)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument deletes a document
// DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.docService.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveDocument reassigns a document to a folder (null = root)
// POST /api/documents/{id}/move
func (h *DocumentHandler) MoveDocument(w http.ResponseWriter, r *http.Request) {
	var req moveDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.docService.Move(r.Context(), r.PathValue("id"), req.FolderID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, moveDocumentResponse{
		ID:       doc.ID,
		FolderID: doc.FolderID,
	})
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
