package entity

// MediaType is how a persisted row refers to a TMDB title.
type MediaType string

const (
	MediaMovie  MediaType = "movie"
	MediaSeries MediaType = "series"
)

func (t MediaType) Valid() bool {
	return t == MediaMovie || t == MediaSeries
}
