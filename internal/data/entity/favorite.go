package entity

import "github.com/google/uuid"

// Favorite is unique per (user_id, tmdb_id, item_type).
type Favorite struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	TmdbID   int       `db:"tmdb_id"`
	ItemType MediaType `db:"item_type"`
}
