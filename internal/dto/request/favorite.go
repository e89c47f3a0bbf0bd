package request

type CreateFavoriteRequest struct {
	TmdbID   int    `json:"tmdb_id" validate:"required,gt=0"`
	ItemType string `json:"item_type" validate:"required,oneof=movie series"`
}
