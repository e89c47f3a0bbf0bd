package repository

import (
	"cinetrack/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Favorite FavoriteRepository
	Library  LibraryRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
		Library:  NewLibraryRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}
