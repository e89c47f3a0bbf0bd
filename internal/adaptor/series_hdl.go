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

type SeriesHandler struct {
	service usecase.SeriesService
	log     *zap.Logger
}

func NewSeriesHandler(service usecase.SeriesService, log *zap.Logger) *SeriesHandler {
	return &SeriesHandler{
		service: service,
		log:     log.With(zap.String("handler", "series")),
	}
}

// Discover handles GET /api/series/discover
func (h *SeriesHandler) Discover(w http.ResponseWriter, r *http.Request) {
	filters := r.URL.Query()
	servePage(w, r, h.log, "discover series", func(ctx context.Context, page int) (*response.MediaPage, error) {
		return h.service.Discover(ctx, filters, page)
	})
}

// Search handles GET /api/series/search
func (h *SeriesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, ok := searchQuery(w, r.URL.Query())
	if !ok {
		return
	}
	servePage(w, r, h.log, "search series", func(ctx context.Context, page int) (*response.MediaPage, error) {
		return h.service.Search(ctx, query, page)
	})
}

// Category handles popular, top_rated, on_the_air and airing_today.
func (h *SeriesHandler) Category(category string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, h.log, "list "+category+" series", func(ctx context.Context, page int) (*response.MediaPage, error) {
			return h.service.ListCategory(ctx, category, page)
		})
	}
}

// Genres handles GET /api/series/genres
func (h *SeriesHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list series genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetSeries handles GET /api/series/{id}
func (h *SeriesHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"), "series id")
	if !ok {
		return
	}

	series, err := h.service.GetSeries(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get series")
		return
	}

	utils.ResponseSuccess(w, "Series retrieved successfully", series)
}

// GetSeason handles GET /api/series/{id}/season/{season}
func (h *SeriesHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"), "series id")
	if !ok {
		return
	}

	// season 0 holds specials
	season, err := utils.ParsePositiveInt(chi.URLParam(r, "season"), "season")
	if err != nil && chi.URLParam(r, "season") != "0" {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.service.GetSeason(r.Context(), id, season)
	if err != nil {
		h.handleServiceError(w, err, "get season")
		return
	}

	utils.ResponseSuccess(w, "Season retrieved successfully", result)
}

func (h *SeriesHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
