package wire

import (
	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/pkg/middleware"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/reviews/media/{tmdbId}/{itemType}", reviewHandler.GetMediaReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(requireSession(repo, config, log))

		r.Get("/api/reviews/me", reviewHandler.GetMyReviews)
		r.Post("/api/reviews", reviewHandler.CreateReview)
		r.Patch("/api/reviews/{id}", reviewHandler.UpdateReview)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reviews", func(r chi.Router) {
		r.Use(requireSession(repo, config, log)) // Must be authenticated
		r.Use(middleware.Admin(repo.User, log))  // Must be admin

		r.Delete("/{id}", reviewHandler.RemoveReview)
	})
}
