package request

type CreateReviewRequest struct {
	TmdbID   int    `json:"tmdb_id" validate:"required,gt=0"`
	ItemType string `json:"item_type" validate:"required,oneof=movie series"`
	Rating   int    `json:"rating" validate:"required,min=1,max=10"`
	Body     string `json:"body" validate:"max=5000"`
}

type UpdateReviewRequest struct {
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Body   *string `json:"body,omitempty" validate:"omitempty,max=5000"`
}
