package usecase

import (
	"context"
	"net/url"
	"time"

	"cinetrack/internal/data/repository"
	"cinetrack/pkg/cache"
	"cinetrack/pkg/utils"

	"go.uber.org/zap"
)

// TMDBFetcher is the slice of the TMDB client the services use.
type TMDBFetcher interface {
	Fetch(ctx context.Context, endpoint string, params url.Values, dest any) error
	FetchWithTimeout(ctx context.Context, endpoint string, params url.Values, dest any, timeout time.Duration) error
}

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Series   SeriesService
	Hero     HeroService
	Favorite FavoriteService
	Library  LibraryService
	Review   ReviewService
}

func NewService(repo *repository.Repository, tmdb TMDBFetcher, config *utils.Config, log *zap.Logger) *Service {
	hydrator := NewHydrator(tmdb, log)

	return &Service{
		Auth:     NewAuthService(repo, config.Session, log),
		User:     NewUserService(repo, config.Session, log),
		Movie:    NewMovieService(tmdb, log),
		Series:   NewSeriesService(tmdb, log),
		Hero:     NewHeroService(tmdb, config.Hero, cache.SystemClock, log),
		Favorite: NewFavoriteService(repo.Favorite, hydrator, log),
		Library:  NewLibraryService(repo.Library, hydrator, log),
		Review:   NewReviewService(repo.Review, hydrator, log),
	}
}
