package adaptor

import (
	"net/http"

	"cinetrack/internal/dto/request"
	"cinetrack/internal/usecase"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LibraryHandler struct {
	service usecase.LibraryService
	log     *zap.Logger
}

func NewLibraryHandler(service usecase.LibraryService, log *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		service: service,
		log:     log.With(zap.String("handler", "library")),
	}
}

// Add handles POST /api/library
func (h *LibraryHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.AddLibraryItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "add library item")
		return
	}

	utils.ResponseCreated(w, "Added to library", item)
}

// UpdateStatus handles PATCH /api/library/{id}
func (h *LibraryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateLibraryStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.UpdateStatus(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update library status")
		return
	}

	utils.ResponseSuccess(w, "Library item updated", item)
}

// Delete handles DELETE /api/library/{id}
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete library item")
		return
	}

	utils.ResponseSuccess(w, "Removed from library", nil)
}

// List handles GET /api/library?status=
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		h.handleServiceError(w, err, "list library")
		return
	}

	utils.ResponseSuccess(w, "Library retrieved successfully", items)
}

// ListDetails handles GET /api/library/details?status=
func (h *LibraryHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListDetails(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		h.handleServiceError(w, err, "list library details")
		return
	}

	utils.ResponseSuccess(w, "Library retrieved successfully", items)
}

// Status handles GET /api/library/status?tmdb_id=&item_type=
func (h *LibraryHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	tmdbID, ok := pathID(w, query.Get("tmdb_id"), "tmdb_id")
	if !ok {
		return
	}

	status, err := h.service.Status(r.Context(), userID, tmdbID, query.Get("item_type"))
	if err != nil {
		h.handleServiceError(w, err, "get library status")
		return
	}

	utils.ResponseSuccess(w, "Library status retrieved", status)
}

func (h *LibraryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
