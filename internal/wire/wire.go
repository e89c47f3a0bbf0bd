package wire

import (
	"net/http"

	"cinetrack/internal/adaptor"
	"cinetrack/internal/data/repository"
	"cinetrack/internal/usecase"
	"cinetrack/pkg/middleware"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the router and the services background jobs need.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes. rdb may be nil, which turns the
// rate limiter off.
func Wiring(repo *repository.Repository, tmdb usecase.TMDBFetcher, rdb *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tmdb, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, rdb, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))
	r.Use(middleware.RateLimit(config.RateLimit, rdb, logger))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireMovie(r, handler.Movie, repo, config, logger)
	wireSeries(r, handler.Series, repo, config, logger)
	wireHero(r, handler.Hero, repo, config, logger)
	wireFavorite(r, handler.Favorite, repo, config, logger)
	wireLibrary(r, handler.Library, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}

func requireSession(repo *repository.Repository, config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.AuthSession(repo.Session, config.Session.Secret, log)
}
