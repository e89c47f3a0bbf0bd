package wire

import (
	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.Route("/api/user", func(r chi.Router) {
		r.Use(requireSession(repo, config, log))

		r.Get("/profile", userHandler.GetProfile)
		r.Patch("/profile", userHandler.UpdateProfile)
	})
}
