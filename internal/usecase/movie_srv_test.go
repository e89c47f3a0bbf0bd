package usecase

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"cinetrack/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const searchPage = `{
	"page": 1,
	"total_pages": 5,
	"total_results": 100,
	"results": [
		{"id": 603, "title": "The Matrix", "release_date": "1999-03-31", "poster_path": "/a.jpg"},
		{"id": 604, "title": "The Matrix Reloaded", "release_date": "2003-05-15"},
		{"id": 605, "title": "The Matrix Revolutions", "release_date": "2003-11-05"}
	]
}`

func TestMovieSearch(t *testing.T) {
	var got url.Values
	svc := NewMovieService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		got = r.URL.Query()
		w.Write([]byte(searchPage))
	}), zaptest.NewLogger(t))

	page, err := svc.Search(context.Background(), " matrix ", 1)
	require.NoError(t, err)

	assert.Equal(t, "matrix", got.Get("query"))
	assert.Equal(t, "1", got.Get("page"))
	assert.Len(t, page.Results, 3)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 100, page.TotalResults)
	assert.Equal(t, "The Matrix", page.Results[0].Title)
	assert.Equal(t, "movie", page.Results[0].MediaType)
	assert.Equal(t, 1999, page.Results[0].Year)
	assert.Equal(t, "the-matrix", page.Results[0].Slug)
}

func TestMovieSearch_RequiresQuery(t *testing.T) {
	svc := NewMovieService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	}), zaptest.NewLogger(t))

	_, err := svc.Search(context.Background(), "  ", 1)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestMovieDiscover_PassesOnlyWhitelistedFilters(t *testing.T) {
	var got url.Values
	svc := NewMovieService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"page":3,"results":[],"total_pages":9,"total_results":170}`))
	}), zaptest.NewLogger(t))

	filters := url.Values{
		"with_genres": {"28"},
		"sort_by":     {"popularity.desc"},
		"api_key":     {"stolen"},
		"page":        {"99"},
	}
	page, err := svc.Discover(context.Background(), filters, 3)
	require.NoError(t, err)

	assert.Equal(t, "28", got.Get("with_genres"))
	assert.Equal(t, "popularity.desc", got.Get("sort_by"))
	assert.Equal(t, "test-key", got.Get("api_key"))
	assert.Equal(t, "3", got.Get("page"))
	assert.Equal(t, 3, page.Page)
	assert.NotNil(t, page.Results)
}

func TestMovieDetail(t *testing.T) {
	svc := NewMovieService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/603":
			w.Write([]byte(`{"id":603,"title":"The Matrix","runtime":136,"genres":[{"id":28,"name":"Action"}]}`))
		case "/movie/603/credits":
			w.Write([]byte(`{"cast":[{"id":1,"name":"Keanu Reeves","character":"Neo"}],"crew":[{"id":2,"name":"Lana Wachowski","job":"Director"},{"id":3,"name":"Someone","job":"Editor"}]}`))
		case "/movie/603/videos":
			http.Error(w, "down", http.StatusBadGateway)
		default:
			w.Write([]byte(`{}`))
		}
	}), zaptest.NewLogger(t))

	movie, err := svc.GetMovie(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, 136, movie.Runtime)
	require.Len(t, movie.Cast, 1)
	assert.Equal(t, "Neo", movie.Cast[0].Character)
	require.Len(t, movie.Directors, 1)
	assert.Equal(t, "Lana Wachowski", movie.Directors[0].Name)

	// a failing section renders empty, not null
	assert.NotNil(t, movie.Videos)
	assert.Empty(t, movie.Videos)
	assert.NotNil(t, movie.Similar)
	assert.NotNil(t, movie.WatchProviders)
}

func TestMovieDetail_UpstreamErrors(t *testing.T) {
	svc := NewMovieService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/1":
			http.Error(w, "nope", http.StatusNotFound)
		case "/movie/2":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			w.Write([]byte(`{}`))
		}
	}), zaptest.NewLogger(t))

	_, err := svc.GetMovie(context.Background(), 1)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.GetMovie(context.Background(), 2)
	assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, apperror.KindOf(err).HTTPStatus())
}

func TestMovieTrendingAndCategory(t *testing.T) {
	var paths []string
	svc := NewMovieService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":1,"media_type":"movie","title":"A"}],"total_pages":1,"total_results":1}`))
	}), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.Trending(ctx, "", 1)
	require.NoError(t, err)
	_, err = svc.ListCategory(ctx, "now_playing", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"/trending/movie/week", "/movie/now_playing"}, paths)

	_, err = svc.Trending(ctx, "month", 1)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	_, err = svc.ListCategory(ctx, "latest", 1)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestSeriesSeason(t *testing.T) {
	svc := NewSeriesService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399/season/1", r.URL.Path)
		w.Write([]byte(`{"id":3624,"name":"Season 1","season_number":1,"poster_path":"/p.jpg","episodes":[{"id":1,"name":"Winter Is Coming","episode_number":1,"still_path":"/e.jpg"}]}`))
	}), zaptest.NewLogger(t))

	season, err := svc.GetSeason(context.Background(), 1399, 1)
	require.NoError(t, err)

	assert.Equal(t, 1399, season.SeriesID)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/p.jpg", season.PosterURL)
	require.Len(t, season.Episodes, 1)
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/e.jpg", season.Episodes[0].StillURL)
}

func TestSeriesDetail_NormalizesName(t *testing.T) {
	svc := NewSeriesService(newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tv/1399" {
			w.Write([]byte(`{"id":1399,"name":"Game of Thrones","first_air_date":"2011-04-17","number_of_seasons":8}`))
			return
		}
		w.Write([]byte(`{}`))
	}), zaptest.NewLogger(t))

	series, err := svc.GetSeries(context.Background(), 1399)
	require.NoError(t, err)

	assert.Equal(t, "Game of Thrones", series.Title)
	assert.Equal(t, "series", series.MediaType)
	assert.Equal(t, "2011-04-17", series.ReleaseDate)
	assert.Equal(t, 8, series.NumberOfSeasons)
	assert.NotNil(t, series.EpisodeRunTime)
}
