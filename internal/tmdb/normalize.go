package tmdb

import (
	"strconv"

	"github.com/gosimple/slug"
)

// Kind selects the TMDB path segment: /movie/... or /tv/...
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// MediaType is the name exposed by the API, "movie" or "series".
func (k Kind) MediaType() string {
	if k == KindTV {
		return "series"
	}
	return "movie"
}

// Media is the uniform shape every movie or series is served in.
type Media struct {
	ID            int     `json:"id"`
	MediaType     string  `json:"media_type"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	PosterURL     string  `json:"poster_url"`
	BackdropPath  string  `json:"backdrop_path"`
	BackdropURL   string  `json:"backdrop_url"`
	ReleaseDate   string  `json:"release_date"`
	Year          int     `json:"year,omitempty"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids,omitempty"`
	Slug          string  `json:"slug"`
}

// Normalize folds a movie or TV payload into Media. A media_type on the payload
// itself (trending/multi endpoints) takes precedence over kind.
func Normalize(raw RawMedia, kind Kind) Media {
	switch raw.MediaType {
	case "tv":
		kind = KindTV
	case "movie":
		kind = KindMovie
	}

	title := firstNonEmpty(raw.Title, raw.Name)
	releaseDate := firstNonEmpty(raw.ReleaseDate, raw.FirstAirDate)

	m := Media{
		ID:            raw.ID,
		MediaType:     kind.MediaType(),
		Title:         title,
		OriginalTitle: firstNonEmpty(raw.OriginalTitle, raw.OriginalName),
		Overview:      raw.Overview,
		PosterPath:    raw.PosterPath,
		PosterURL:     BuildImageURL(raw.PosterPath, PosterSize),
		BackdropPath:  raw.BackdropPath,
		BackdropURL:   BuildImageURL(raw.BackdropPath, BackdropSize),
		ReleaseDate:   releaseDate,
		Year:          yearOf(releaseDate),
		VoteAverage:   raw.VoteAverage,
		VoteCount:     raw.VoteCount,
		Popularity:    raw.Popularity,
		GenreIDs:      raw.GenreIDs,
	}
	if title != "" {
		m.Slug = slug.Make(title)
	}
	return m
}

func NormalizeList(raws []RawMedia, kind Kind) []Media {
	out := make([]Media, 0, len(raws))
	for _, raw := range raws {
		// person results from multi search carry no media fields
		if raw.MediaType == "person" {
			continue
		}
		out = append(out, Normalize(raw, kind))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
