package adaptor

import (
	"net/http"

	"cinetrack/internal/dto/request"
	"cinetrack/internal/usecase"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// Create handles POST /api/favorites
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateFavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	favorite, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create favorite")
		return
	}

	utils.ResponseCreated(w, "Added to favorites", favorite)
}

// Delete handles DELETE /api/favorites/{id}
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete favorite")
		return
	}

	utils.ResponseSuccess(w, "Removed from favorites", nil)
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	favorites, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "Favorites retrieved successfully", favorites)
}

// ListDetails handles GET /api/favorites/details
func (h *FavoriteHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	favorites, err := h.service.ListDetails(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list favorite details")
		return
	}

	utils.ResponseSuccess(w, "Favorites retrieved successfully", favorites)
}

// Check handles GET /api/favorites/check?tmdb_id=&item_type=
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	tmdbID, ok := pathID(w, query.Get("tmdb_id"), "tmdb_id")
	if !ok {
		return
	}

	result, err := h.service.Check(r.Context(), userID, tmdbID, query.Get("item_type"))
	if err != nil {
		h.handleServiceError(w, err, "check favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite status retrieved", result)
}

func (h *FavoriteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
