package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Movie(t *testing.T) {
	m := Normalize(RawMedia{
		ID:          603,
		Title:       "The Matrix",
		ReleaseDate: "1999-03-30",
		PosterPath:  "/p.jpg",
		VoteAverage: 8.2,
	}, KindMovie)

	assert.Equal(t, "movie", m.MediaType)
	assert.Equal(t, "The Matrix", m.Title)
	assert.Equal(t, "1999-03-30", m.ReleaseDate)
	assert.Equal(t, 1999, m.Year)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/p.jpg", m.PosterURL)
	assert.Equal(t, "", m.BackdropURL)
	assert.Equal(t, "the-matrix", m.Slug)
}

func TestNormalize_SeriesUsesNameAndFirstAirDate(t *testing.T) {
	m := Normalize(RawMedia{
		ID:           1399,
		Name:         "Game of Thrones",
		OriginalName: "Game of Thrones",
		FirstAirDate: "2011-04-17",
	}, KindTV)

	assert.Equal(t, "series", m.MediaType)
	assert.Equal(t, "Game of Thrones", m.Title)
	assert.Equal(t, "Game of Thrones", m.OriginalTitle)
	assert.Equal(t, "2011-04-17", m.ReleaseDate)
	assert.Equal(t, 2011, m.Year)
}

func TestNormalize_PayloadMediaTypeWins(t *testing.T) {
	m := Normalize(RawMedia{ID: 1, MediaType: "tv", Name: "Dark"}, KindMovie)
	assert.Equal(t, "series", m.MediaType)
}

func TestNormalizeList_SkipsPeopleAndHandlesMissingFields(t *testing.T) {
	list := NormalizeList([]RawMedia{
		{ID: 1, MediaType: "movie", Title: "A"},
		{ID: 2, MediaType: "person", Name: "Someone"},
		{ID: 3, MediaType: "tv"},
	}, KindMovie)

	assert.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 3, list[1].ID)
	assert.Equal(t, "", list[1].Title)
	assert.Equal(t, "", list[1].Slug)
	assert.Equal(t, 0, list[1].Year)
}
