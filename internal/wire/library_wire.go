package wire

import (
	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLibrary(
	r chi.Router,
	libraryHandler *adaptor.LibraryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/library", func(r chi.Router) {
		r.Use(requireSession(repo, config, log))

		r.Get("/", libraryHandler.List)
		r.Get("/details", libraryHandler.ListDetails)
		r.Get("/status", libraryHandler.Status)
		r.Post("/", libraryHandler.Add)
		r.Patch("/{id}", libraryHandler.UpdateStatus)
		r.Delete("/{id}", libraryHandler.Delete)
	})
}
