package usecase

import (
	"context"
	"fmt"

	"cinetrack/internal/data/entity"
	"cinetrack/internal/dto/response"
	"cinetrack/internal/tmdb"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

const detailsUnavailable = "could not load details"

// MediaRef points a stored record at a TMDB title.
type MediaRef struct {
	TmdbID   int
	ItemType entity.MediaType
}

// Hydrator merges live TMDB metadata into stored references.
type Hydrator struct {
	tmdb TMDBFetcher
	log  *zap.Logger
}

func NewHydrator(tmdb TMDBFetcher, log *zap.Logger) *Hydrator {
	return &Hydrator{
		tmdb: tmdb,
		log:  log.With(zap.String("service", "hydration")),
	}
}

// Hydrate fetches every ref in parallel, one goroutine per ref. Result i always
// belongs to refs[i]; a failed lookup yields the unavailable placeholder and
// never fails the batch.
func (h *Hydrator) Hydrate(ctx context.Context, refs []MediaRef) []response.MediaDetails {
	if len(refs) == 0 {
		return []response.MediaDetails{}
	}

	mapper := iter.Mapper[MediaRef, response.MediaDetails]{MaxGoroutines: len(refs)}
	return mapper.Map(refs, func(ref *MediaRef) response.MediaDetails {
		return h.HydrateOne(ctx, *ref)
	})
}

func (h *Hydrator) HydrateOne(ctx context.Context, ref MediaRef) response.MediaDetails {
	kind := tmdb.KindMovie
	if ref.ItemType == entity.MediaSeries {
		kind = tmdb.KindTV
	}

	if ref.TmdbID <= 0 || !ref.ItemType.Valid() {
		h.log.Warn("Skipping hydration of malformed ref",
			zap.Int("tmdb_id", ref.TmdbID), zap.String("item_type", string(ref.ItemType)))
		return unavailable()
	}

	endpoint := fmt.Sprintf("%s/%d", kind, ref.TmdbID)

	var raw tmdb.RawMedia
	if err := h.tmdb.Fetch(ctx, endpoint, nil, &raw); err != nil {
		h.log.Warn("Hydration failed",
			zap.Int("tmdb_id", ref.TmdbID),
			zap.String("item_type", string(ref.ItemType)),
			zap.Int("status", tmdb.StatusCode(err)),
			zap.Error(err),
		)
		return unavailable()
	}

	media := tmdb.Normalize(raw, kind)
	return response.MediaDetails{
		Title:        media.Title,
		PosterPath:   media.PosterPath,
		PosterURL:    media.PosterURL,
		BackdropPath: media.BackdropPath,
		ReleaseDate:  media.ReleaseDate,
		Overview:     media.Overview,
		VoteAverage:  media.VoteAverage,
		Slug:         media.Slug,
	}
}

func unavailable() response.MediaDetails {
	return response.MediaDetails{
		DetailsUnavailable: true,
		DetailsError:       detailsUnavailable,
	}
}
