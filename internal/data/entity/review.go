package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseNoDelete
	UserID   uuid.UUID `db:"user_id"`
	TmdbID   int       `db:"tmdb_id"`
	ItemType MediaType `db:"item_type"`
	Rating   int       `db:"rating"` // 1-10
	Body     string    `db:"body"`
}

// ReviewWithAuthor is a review joined with the author's public fields.
type ReviewWithAuthor struct {
	Review
	AuthorName     string  `db:"author_name"`
	AuthorPhotoURL *string `db:"author_photo_url"`
}
