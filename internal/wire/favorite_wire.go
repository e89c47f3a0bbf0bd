package wire

import (
	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(requireSession(repo, config, log))

		r.Get("/", favoriteHandler.List)
		r.Get("/details", favoriteHandler.ListDetails)
		r.Get("/check", favoriteHandler.Check)
		r.Post("/", favoriteHandler.Create)
		r.Delete("/{id}", favoriteHandler.Delete)
	})
}
