package response

import (
	"time"

	"cinetrack/internal/data/entity"
)

type FavoriteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TmdbID    int       `json:"tmdb_id"`
	ItemType  string    `json:"item_type"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteDetailResponse struct {
	FavoriteResponse
	MediaDetails
}

type FavoriteCheckResponse struct {
	Favorited bool    `json:"favorited"`
	ID        *string `json:"id"`
}

func FavoriteToResponse(favorite *entity.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        favorite.ID.String(),
		UserID:    favorite.UserID.String(),
		TmdbID:    favorite.TmdbID,
		ItemType:  string(favorite.ItemType),
		CreatedAt: favorite.CreatedAt,
	}
}
