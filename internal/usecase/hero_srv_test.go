package usecase

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cinetrack/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const trendingWeek = `{"page":1,"total_pages":1,"total_results":3,"results":[
	{"id":1,"media_type":"movie","title":"One","backdrop_path":"/b1.jpg"},
	{"id":2,"media_type":"movie","title":"No Backdrop"},
	{"id":3,"media_type":"movie","title":"Three","backdrop_path":"/b3.jpg"}
]}`

func TestHeroItems_EnrichesAndCaches(t *testing.T) {
	var detailCalls atomic.Int32
	client := newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trending/movie/week":
			w.Write([]byte(trendingWeek))
		case "/movie/1":
			detailCalls.Add(1)
			assert.Equal(t, "images", r.URL.Query().Get("append_to_response"))
			w.Write([]byte(`{"id":1,"title":"One","backdrop_path":"/b1.jpg","runtime":120,"tagline":"first",
				"genres":[{"id":1,"name":"Drama"}],
				"images":{"logos":[{"file_path":"/de.png","iso_639_1":"de"},{"file_path":"/en.png","iso_639_1":"en"}]}}`))
		case "/movie/3":
			detailCalls.Add(1)
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewHeroService(client, utils.HeroConfig{Limit: 5, CacheTTL: time.Hour, CacheSize: 10}, clock, zaptest.NewLogger(t))
	ctx := context.Background()

	items, err := svc.GetHeroItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 120, items[0].Runtime)
	assert.Equal(t, []string{"Drama"}, items[0].Genres)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/en.png", items[0].LogoURL)

	// failed enrichment falls back to the trending entry
	assert.Equal(t, 3, items[1].ID)
	assert.Equal(t, "Three", items[1].Title)
	assert.Empty(t, items[1].LogoURL)
	assert.Equal(t, int32(2), detailCalls.Load())

	// movie 1 comes from the cache, movie 3 was not cached and is retried
	_, err = svc.GetHeroItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(3), detailCalls.Load())

	clock.Advance(time.Hour)
	_, err = svc.GetHeroItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(5), detailCalls.Load())
}

func TestHeroItems_RespectsLimit(t *testing.T) {
	client := newTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/trending/movie/week" {
			w.Write([]byte(trendingWeek))
			return
		}
		w.Write([]byte(`{}`))
	})

	svc := NewHeroService(client, utils.HeroConfig{Limit: 1}, nil, zaptest.NewLogger(t))
	items, err := svc.GetHeroItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0].Title)
}
