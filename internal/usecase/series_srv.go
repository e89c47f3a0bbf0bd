package usecase

import (
	"context"
	"fmt"
	"net/url"

	"cinetrack/internal/dto/response"
	"cinetrack/internal/tmdb"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	seriesCategories = map[string]bool{
		"popular":      true,
		"top_rated":    true,
		"on_the_air":   true,
		"airing_today": true,
	}

	seriesDiscoverFilters = map[string]bool{
		"sort_by":                true,
		"with_genres":            true,
		"without_genres":         true,
		"with_keywords":          true,
		"with_original_language": true,
		"with_networks":          true,
		"with_status":            true,
		"first_air_date_year":    true,
		"first_air_date.gte":     true,
		"first_air_date.lte":     true,
		"vote_average.gte":       true,
		"vote_average.lte":       true,
		"vote_count.gte":         true,
		"with_watch_providers":   true,
		"watch_region":           true,
	}
)

type SeriesService interface {
	GetSeries(ctx context.Context, id int) (*response.SeriesDetailResponse, error)
	GetSeason(ctx context.Context, id, season int) (*response.SeasonResponse, error)
	Discover(ctx context.Context, filters url.Values, page int) (*response.MediaPage, error)
	Search(ctx context.Context, query string, page int) (*response.MediaPage, error)
	ListCategory(ctx context.Context, category string, page int) (*response.MediaPage, error)
	Genres(ctx context.Context) ([]response.GenreResponse, error)
}

type seriesService struct {
	catalog
}

func NewSeriesService(client TMDBFetcher, log *zap.Logger) SeriesService {
	return &seriesService{
		catalog: catalog{
			tmdb: client,
			kind: tmdb.KindTV,
			log:  log.With(zap.String("service", "series")),
		},
	}
}

func (s *seriesService) GetSeries(ctx context.Context, id int) (*response.SeriesDetailResponse, error) {
	base := fmt.Sprintf("tv/%d", id)

	var (
		details   tmdb.TVDetails
		credits   tmdb.Credits
		videos    tmdb.Videos
		similar   tmdb.Page[tmdb.RawMedia]
		providers tmdb.WatchProviders
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.tmdb.Fetch(gctx, base, nil, &details)
	})
	g.Go(optional(gctx, s.tmdb, s.log, base+"/credits", nil, &credits))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/videos", nil, &videos))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/similar", nil, &similar))
	g.Go(optional(gctx, s.tmdb, s.log, base+"/watch/providers", nil, &providers))

	if err := g.Wait(); err != nil {
		return nil, upstreamError(s.log, err, base, nil, "Series not found")
	}

	runtimes := details.EpisodeRunTime
	if runtimes == nil {
		runtimes = []int{}
	}

	return &response.SeriesDetailResponse{
		Media:            tmdb.Normalize(details.RawMedia, tmdb.KindTV),
		Genres:           response.GenresToResponse(details.Genres),
		Tagline:          details.Tagline,
		Status:           details.Status,
		Homepage:         details.Homepage,
		LastAirDate:      details.LastAirDate,
		NumberOfSeasons:  details.NumberOfSeasons,
		NumberOfEpisodes: details.NumberOfEpisodes,
		EpisodeRunTime:   runtimes,
		OriginalLanguage: details.OriginalLanguage,
		Networks:         response.CompanyNames(details.Networks),
		CreatedBy:        response.CreatorNames(details.CreatedBy),
		Seasons:          response.SeasonSummariesToResponse(details.Seasons),
		Cast:             response.CastToResponse(credits.Cast),
		Videos:           response.VideosToResponse(videos.Results),
		Similar:          tmdb.NormalizeList(similar.Results, tmdb.KindTV),
		WatchProviders:   response.ProvidersOrEmpty(providers),
	}, nil
}

func (s *seriesService) GetSeason(ctx context.Context, id, season int) (*response.SeasonResponse, error) {
	endpoint := fmt.Sprintf("tv/%d/season/%d", id, season)

	var details tmdb.SeasonDetails
	if err := s.tmdb.Fetch(ctx, endpoint, nil, &details); err != nil {
		return nil, upstreamError(s.log, err, endpoint, nil, "Season not found")
	}

	resp := response.SeasonToResponse(id, details)
	return &resp, nil
}

func (s *seriesService) Discover(ctx context.Context, filters url.Values, page int) (*response.MediaPage, error) {
	return s.discover(ctx, filters, seriesDiscoverFilters, page)
}

func (s *seriesService) Search(ctx context.Context, query string, page int) (*response.MediaPage, error) {
	return s.search(ctx, query, page)
}

func (s *seriesService) ListCategory(ctx context.Context, category string, page int) (*response.MediaPage, error) {
	return s.category(ctx, category, seriesCategories, page)
}

func (s *seriesService) Genres(ctx context.Context) ([]response.GenreResponse, error) {
	return s.genres(ctx)
}
