package adaptor

import (
	"cinetrack/internal/usecase"
	"cinetrack/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Movie    *MovieHandler
	Series   *SeriesHandler
	Hero     *HeroHandler
	Favorite *FavoriteHandler
	Library  *LibraryHandler
	Review   *ReviewHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config.Session, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Series:   NewSeriesHandler(service.Series, log),
		Hero:     NewHeroHandler(service.Hero, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
		Library:  NewLibraryHandler(service.Library, log),
		Review:   NewReviewHandler(service.Review, log),
	}
}
