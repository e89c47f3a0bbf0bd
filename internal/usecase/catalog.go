package usecase

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"cinetrack/internal/dto/response"
	"cinetrack/internal/tmdb"
	"cinetrack/pkg/apperror"

	"go.uber.org/zap"
)

// catalog holds the list endpoints movies and series share.
type catalog struct {
	tmdb TMDBFetcher
	kind tmdb.Kind
	log  *zap.Logger
}

func (c *catalog) page(ctx context.Context, endpoint string, params url.Values, page int) (*response.MediaPage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("page", strconv.Itoa(page))

	var result tmdb.Page[tmdb.RawMedia]
	if err := c.tmdb.Fetch(ctx, endpoint, params, &result); err != nil {
		return nil, upstreamError(c.log, err, endpoint, params, "Not found")
	}

	// echo what was asked for when TMDB leaves it out
	if result.Page == 0 {
		result.Page = page
	}
	return response.NewMediaPage(result, c.kind), nil
}

func (c *catalog) discover(ctx context.Context, filters url.Values, allowed map[string]bool, page int) (*response.MediaPage, error) {
	params := url.Values{}
	for key, values := range filters {
		if !allowed[key] {
			continue
		}
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				params.Add(key, v)
			}
		}
	}
	return c.page(ctx, "discover/"+string(c.kind), params, page)
}

func (c *catalog) search(ctx context.Context, query string, page int) (*response.MediaPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Validation("query is required")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	return c.page(ctx, "search/"+string(c.kind), params, page)
}

func (c *catalog) category(ctx context.Context, category string, allowed map[string]bool, page int) (*response.MediaPage, error) {
	if !allowed[category] {
		return nil, apperror.Validation("unknown category " + category)
	}
	return c.page(ctx, string(c.kind)+"/"+category, nil, page)
}

func (c *catalog) genres(ctx context.Context) ([]response.GenreResponse, error) {
	endpoint := "genre/" + string(c.kind) + "/list"

	var result tmdb.GenreList
	if err := c.tmdb.Fetch(ctx, endpoint, nil, &result); err != nil {
		return nil, upstreamError(c.log, err, endpoint, nil, "Genres not found")
	}
	return response.GenresToResponse(result.Genres), nil
}

// optional fetches one secondary section of a detail page. A failure is logged
// and leaves dest untouched so the section renders empty.
func optional[T any](ctx context.Context, client TMDBFetcher, log *zap.Logger, endpoint string, params url.Values, dest *T) func() error {
	return func() error {
		var v T
		if err := client.Fetch(ctx, endpoint, params, &v); err != nil {
			log.Warn("Optional TMDB section failed",
				zap.String("endpoint", endpoint),
				zap.Int("status", tmdb.StatusCode(err)),
				zap.Error(err))
			return nil
		}
		*dest = v
		return nil
	}
}
