package adaptor

import (
	"context"
	"net/http"

	"cinetrack/internal/dto/response"
	"cinetrack/internal/usecase"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Discover handles GET /api/movies/discover
func (h *MovieHandler) Discover(w http.ResponseWriter, r *http.Request) {
	filters := r.URL.Query()
	servePage(w, r, h.log, "discover movies", func(ctx context.Context, page int) (*response.MediaPage, error) {
		return h.service.Discover(ctx, filters, page)
	})
}

// Search handles GET /api/movies/search
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, ok := searchQuery(w, r.URL.Query())
	if !ok {
		return
	}
	servePage(w, r, h.log, "search movies", func(ctx context.Context, page int) (*response.MediaPage, error) {
		return h.service.Search(ctx, query, page)
	})
}

// Category handles the fixed movie lists (popular, top_rated, now_playing, upcoming).
func (h *MovieHandler) Category(category string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, h.log, "list "+category+" movies", func(ctx context.Context, page int) (*response.MediaPage, error) {
			return h.service.ListCategory(ctx, category, page)
		})
	}
}

// Trending handles GET /api/movies/trending?window=day|week
func (h *MovieHandler) Trending(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("window")
	servePage(w, r, h.log, "list trending movies", func(ctx context.Context, page int) (*response.MediaPage, error) {
		return h.service.Trending(ctx, window, page)
	})
}

// Genres handles GET /api/movies/genres
func (h *MovieHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list movie genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetMovie handles GET /api/movies/{id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"), "movie id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovie(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// GetImages handles GET /api/movies/{id}/images
func (h *MovieHandler) GetImages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"), "movie id")
	if !ok {
		return
	}

	gallery, err := h.service.GetImages(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movie images")
		return
	}

	utils.ResponseSuccess(w, "Images retrieved successfully", gallery)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
