package wire

import (
	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeries(
	r chi.Router,
	seriesHandler *adaptor.SeriesHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/series", func(r chi.Router) {
		r.Get("/discover", seriesHandler.Discover)
		r.Get("/search", seriesHandler.Search)
		r.Get("/genres", seriesHandler.Genres)
		for _, category := range []string{"popular", "top_rated", "on_the_air", "airing_today"} {
			r.Get("/"+category, seriesHandler.Category(category))
		}

		r.Get("/{id}", seriesHandler.GetSeries)
		r.Get("/{id}/season/{season}", seriesHandler.GetSeason)
	})
}

func wireHero(
	r chi.Router,
	heroHandler *adaptor.HeroHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/api/hero", heroHandler.GetHero)
}
