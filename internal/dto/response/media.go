package response

// MediaDetails is the live TMDB metadata merged into a stored favorite, library
// item or review. When the lookup fails every field is empty and
// DetailsUnavailable is set; the owning record still carries the identifiers.
type MediaDetails struct {
	Title              string  `json:"title"`
	PosterPath         string  `json:"poster_path"`
	PosterURL          string  `json:"poster_url"`
	BackdropPath       string  `json:"backdrop_path"`
	ReleaseDate        string  `json:"release_date"`
	Overview           string  `json:"overview"`
	VoteAverage        float64 `json:"vote_average"`
	Slug               string  `json:"slug"`
	DetailsUnavailable bool    `json:"details_unavailable,omitempty"`
	DetailsError       string  `json:"details_error,omitempty"`
}
