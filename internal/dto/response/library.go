package response

import (
	"time"

	"cinetrack/internal/data/entity"
)

type LibraryItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TmdbID    int       `json:"tmdb_id"`
	ItemType  string    `json:"item_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LibraryDetailResponse struct {
	LibraryItemResponse
	MediaDetails
}

type LibraryStatusResponse struct {
	InLibrary bool    `json:"in_library"`
	ID        *string `json:"id"`
	Status    *string `json:"status"`
}

func LibraryItemToResponse(item *entity.LibraryItem) LibraryItemResponse {
	return LibraryItemResponse{
		ID:        item.ID.String(),
		UserID:    item.UserID.String(),
		TmdbID:    item.TmdbID,
		ItemType:  string(item.ItemType),
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
