package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cinetrack/internal/dto/response"
	"cinetrack/internal/tmdb"
	"cinetrack/pkg/cache"
	"cinetrack/pkg/utils"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

const (
	defaultHeroLimit = 8
	defaultHeroTTL   = time.Hour
	trendingEndpoint = "trending/movie/week"
)

type HeroService interface {
	GetHeroItems(ctx context.Context) ([]response.HeroItem, error)
}

type heroService struct {
	tmdb  TMDBFetcher
	limit int
	// enrichment per movie id; owned by this instance only
	cache *cache.TTL[int, response.HeroItem]
	log   *zap.Logger
}

func NewHeroService(client TMDBFetcher, config utils.HeroConfig, clock cache.Clock, log *zap.Logger) HeroService {
	limit := config.Limit
	if limit <= 0 {
		limit = defaultHeroLimit
	}
	ttl := config.CacheTTL
	if ttl <= 0 {
		ttl = defaultHeroTTL
	}
	size := config.CacheSize
	if size <= 0 {
		size = 200
	}

	return &heroService{
		tmdb:  client,
		limit: limit,
		cache: cache.NewTTL[int, response.HeroItem](size, ttl, clock),
		log:   log.With(zap.String("service", "hero")),
	}
}

// GetHeroItems returns this week's trending movies that have a backdrop, each
// enriched with runtime, genres, tagline and an English logo when available.
func (s *heroService) GetHeroItems(ctx context.Context) ([]response.HeroItem, error) {
	var trending tmdb.Page[tmdb.RawMedia]
	if err := s.tmdb.Fetch(ctx, trendingEndpoint, nil, &trending); err != nil {
		return nil, upstreamError(s.log, err, trendingEndpoint, nil, "Trending list not found")
	}

	picked := make([]tmdb.RawMedia, 0, s.limit)
	for _, raw := range trending.Results {
		if raw.BackdropPath == "" {
			continue
		}
		picked = append(picked, raw)
		if len(picked) == s.limit {
			break
		}
	}

	if len(picked) == 0 {
		return []response.HeroItem{}, nil
	}

	mapper := iter.Mapper[tmdb.RawMedia, response.HeroItem]{MaxGoroutines: len(picked)}
	return mapper.Map(picked, func(raw *tmdb.RawMedia) response.HeroItem {
		return s.enrich(ctx, *raw)
	}), nil
}

func (s *heroService) enrich(ctx context.Context, raw tmdb.RawMedia) response.HeroItem {
	if item, ok := s.cache.Get(raw.ID); ok {
		return item
	}

	endpoint := fmt.Sprintf("movie/%d", raw.ID)
	params := url.Values{
		"append_to_response":     {"images"},
		"include_image_language": {"en,null"},
	}

	var details tmdb.MovieDetails
	if err := s.tmdb.Fetch(ctx, endpoint, params, &details); err != nil {
		s.log.Warn("Hero enrichment failed, using trending entry",
			zap.Int("tmdb_id", raw.ID),
			zap.Int("status", tmdb.StatusCode(err)),
			zap.Error(err))
		return response.HeroItem{Media: tmdb.Normalize(raw, tmdb.KindMovie), Genres: []string{}}
	}

	genres := make([]string, 0, len(details.Genres))
	for _, g := range details.Genres {
		genres = append(genres, g.Name)
	}

	// details may lack the trending fields (media_type) but carry the same media
	if details.ID == 0 {
		details.RawMedia = raw
	}

	item := response.HeroItem{
		Media:   tmdb.Normalize(details.RawMedia, tmdb.KindMovie),
		Runtime: details.Runtime,
		Genres:  genres,
		Tagline: details.Tagline,
		LogoURL: englishLogo(details.Images),
	}

	s.cache.Set(raw.ID, item)
	return item
}

func englishLogo(images *tmdb.Images) string {
	if images == nil {
		return ""
	}
	for _, logo := range images.Logos {
		if logo.Language != nil && *logo.Language == "en" {
			return tmdb.BuildImageURL(logo.FilePath, tmdb.LogoSize)
		}
	}
	return ""
}
