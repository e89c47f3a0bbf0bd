package wire

import (
	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/discover", movieHandler.Discover)
		r.Get("/search", movieHandler.Search)
		r.Get("/trending", movieHandler.Trending)
		r.Get("/genres", movieHandler.Genres)
		for _, category := range []string{"popular", "top_rated", "now_playing", "upcoming"} {
			r.Get("/"+category, movieHandler.Category(category))
		}

		r.Get("/{id}", movieHandler.GetMovie)
		r.Get("/{id}/images", movieHandler.GetImages)
	})
}
