package response

import (
	"time"

	"cinetrack/internal/data/entity"
)

type ReviewAuthor struct {
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url"`
}

type ReviewResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	TmdbID    int           `json:"tmdb_id"`
	ItemType  string        `json:"item_type"`
	Rating    int           `json:"rating"`
	Body      string        `json:"body"`
	Author    *ReviewAuthor `json:"author,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MyReviewResponse is one of the caller's reviews with the reviewed title.
type MyReviewResponse struct {
	ReviewResponse
	MediaDetails
}

type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type MediaReviewsResponse struct {
	TmdbID   int                               `json:"tmdb_id"`
	ItemType string                            `json:"item_type"`
	Media    MediaDetails                      `json:"media"`
	Stats    ReviewStats                       `json:"stats"`
	Reviews  *PaginatedResponse[ReviewResponse] `json:"reviews"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		TmdbID:    review.TmdbID,
		ItemType:  string(review.ItemType),
		Rating:    review.Rating,
		Body:      review.Body,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func ReviewWithAuthorToResponse(review *entity.ReviewWithAuthor) ReviewResponse {
	resp := ReviewToResponse(&review.Review)
	resp.Author = &ReviewAuthor{
		Name:     review.AuthorName,
		PhotoURL: review.AuthorPhotoURL,
	}
	return resp
}
