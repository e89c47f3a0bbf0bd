package request

// Status is optional on create and defaults to PLAN_TO_WATCH.
type AddLibraryItemRequest struct {
	TmdbID   int    `json:"tmdb_id" validate:"required,gt=0"`
	ItemType string `json:"item_type" validate:"required,oneof=movie series"`
	Status   string `json:"status,omitempty"`
}

type UpdateLibraryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
