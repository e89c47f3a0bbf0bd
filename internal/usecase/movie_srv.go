package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cinetrack/internal/dto/response"
	"cinetrack/internal/tmdb"
	"cinetrack/pkg/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImageGalleryTimeout bounds the image gallery call, which can be large.
const ImageGalleryTimeout = 10 * time.Second

var (
	movieCategories = map[string]bool{
		"popular":     true,
		"top_rated":   true,
		"now_playing": true,
		"upcoming":    true,
	}

	movieDiscoverFilters = map[string]bool{
		"sort_by":                  true,
		"with_genres":              true,
		"without_genres":           true,
		"with_keywords":            true,
		"with_original_language":   true,
		"primary_release_year":     true,
		"primary_release_date.gte": true,
		"primary_release_date.lte": true,
		"vote_average.gte":         true,
		"vote_average.lte":         true,
		"vote_count.gte":           true,
		"with_runtime.gte":         true,
		"with_runtime.lte":         true,
		"with_watch_providers":     true,
		"watch_region":             true,
		"region":                   true,
		"year":                     true,
	}
)

type MovieService interface {
	GetMovie(ctx context.Context, id int) (*response.MovieDetailResponse, error)
	GetImages(ctx context.Context, id int) (*response.ImageGalleryResponse, error)
	Discover(ctx context.Context, filters url.Values, page int) (*response.MediaPage, error)
	Search(ctx context.Context, query string, page int) (*response.MediaPage, error)
	ListCategory(ctx context.Context, category string, page int) (*response.MediaPage, error)
	Trending(ctx context.Context, window string, page int) (*response.MediaPage, error)
	Genres(ctx context.Context) ([]response.GenreResponse, error)
}

type movieService struct {
	catalog
}

func NewMovieService(client TMDBFetcher, log *zap.Logger) MovieService {
	return &movieService{
		catalog: catalog{
			tmdb: client,
			kind: tmdb.KindMovie,
			log:  log.With(zap.String("service", "movie")),
		},
	}
}

func (s *movieService) GetMovie(ctx context.Context, id int) (*response.MovieDetailResponse, error) {
	base := fmt.Sprintf("movie/%d", id)

	var (
		details   tmdb.MovieDetails
		credits   tmdb.Credits
		videos    tmdb.Videos
		images    tmdb.Images
		similar   tmdb.Page[tmdb.RawMedia]
		providers tmdb.WatchProviders
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.tmdb.Fetch(gctx, base, nil, &details)
	})
	g.Go(optional(gctx, s.tmdb, s.log, base+"/credits", nil, &credits))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/videos", nil, &videos))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/images", imageLanguages(), &images))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/similar", nil, &similar))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/watch/providers", nil, &providers))

	if err := g.Wait(); err != nil {
		return nil, upstreamError(s.log, err, base, nil, "Movie not found")
	}

	return &response.MovieDetailResponse{
		Media:               tmdb.Normalize(details.RawMedia, tmdb.KindMovie),
		Genres:              response.GenresToResponse(details.Genres),
		Runtime:             details.Runtime,
		Tagline:             details.Tagline,
		Status:              details.Status,
		ImdbID:              details.ImdbID,
		Homepage:            details.Homepage,
		Budget:              details.Budget,
		Revenue:             details.Revenue,
		OriginalLanguage:    details.OriginalLanguage,
		ProductionCompanies: response.CompanyNames(details.Companies),
		Cast:                response.CastToResponse(credits.Cast),
		Directors:           response.CrewToResponse(credits.Crew, "Director"),
		Videos:              response.VideosToResponse(videos.Results),
		Images:              response.ImagesToResponse(images),
		Similar:             tmdb.NormalizeList(similar.Results, tmdb.KindMovie),
		WatchProviders:      response.ProvidersOrEmpty(providers),
	}, nil
}

func (s *movieService) GetImages(ctx context.Context, id int) (*response.ImageGalleryResponse, error) {
	endpoint := fmt.Sprintf("movie/%d/images", id)
	params := imageLanguages()

	var images tmdb.Images
	if err := s.tmdb.FetchWithTimeout(ctx, endpoint, params, &images, ImageGalleryTimeout); err != nil {
		return nil, upstreamError(s.log, err, endpoint, params, "Movie not found")
	}

	gallery := response.ImagesToResponse(images)
	return &gallery, nil
}

func (s *movieService) Discover(ctx context.Context, filters url.Values, page int) (*response.MediaPage, error) {
	return s.discover(ctx, filters, movieDiscoverFilters, page)
}

func (s *movieService) Search(ctx context.Context, query string, page int) (*response.MediaPage, error) {
	return s.search(ctx, query, page)
}

func (s *movieService) ListCategory(ctx context.Context, category string, page int) (*response.MediaPage, error) {
	return s.category(ctx, category, movieCategories, page)
}

func (s *movieService) Trending(ctx context.Context, window string, page int) (*response.MediaPage, error) {
	if window == "" {
		window = "week"
	}
	if window != "day" && window != "week" {
		return nil, apperror.Validation("window must be day or week")
	}
	return s.page(ctx, "trending/movie/"+window, nil, page)
}

func (s *movieService) Genres(ctx context.Context) ([]response.GenreResponse, error) {
	return s.genres(ctx)
}

// imageLanguages keeps English and language-neutral images; TMDB otherwise
// filters by the request language only.
func imageLanguages() url.Values {
	return url.Values{"include_image_language": {"en,null"}}
}
