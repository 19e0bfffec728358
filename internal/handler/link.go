package handler

import (
	"log/slog"
	"net/http"

	"linkvault/internal/domain/models"
	"linkvault/internal/domain/services"
	"linkvault/internal/httputil"
)

// LinkHandler handles link HTTP requests
type LinkHandler struct {
	linkService services.LinkService
	logger      *slog.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService services.LinkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
		logger:      logger,
	}
}

// ListLinks lists the caller's links, optionally filtered by folder
// GET /api/links?folderId=
func (h *LinkHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	folderID := r.URL.Query().Get("folderId")

	links, err := h.linkService.ListLinks(r.Context(), httputil.GetUserID(r), folderID)
	if err != nil {
		handleError(w, h.logger, err, "Link")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, links)
}

// GetLink retrieves a link
// GET /api/links/{id}
func (h *LinkHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.linkService.GetLink(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err, "Link")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, link)
}

// CreateLink creates a link inside a folder
// POST /api/links
func (h *LinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req services.CreateLinkRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	link, err := h.linkService.CreateLink(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err, "Folder")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, link)
}

// UpdateLink applies a partial update
// PUT /api/links/{id}
func (h *LinkHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title httputil.OptionalString `json:"title"`
		URL   httputil.OptionalString `json:"url"`
	}
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := services.UpdateLinkRequest{
		Title: body.Title.Ptr(),
		URL:   body.URL.Ptr(),
	}
	link, err := h.linkService.UpdateLink(r.Context(), httputil.GetUserID(r), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, h.logger, err, "Link")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, link)
}

// deletedLinkBody echoes a deleted link back to the client
type deletedLinkBody struct {
	Message string       `json:"message"`
	Link    *models.Link `json:"link"`
}

// DeleteLink deletes a link and echoes it back
// DELETE /api/links/{id}
func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.linkService.DeleteLink(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err, "Link")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deletedLinkBody{Message: "Link deleted successfully", Link: link})
}
