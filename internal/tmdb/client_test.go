package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"cinetrack/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		APIKey:   "secret",
		BaseURL:  srv.URL + "/",
		Language: "en-US",
		Timeout:  2 * time.Second,
	}, zaptest.NewLogger(t), opts...)
}

func TestFetch_AppendsKeyAndLanguageAndTrimsSlashes(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"id": 603, "title": "The Matrix"}`))
	})

	var out RawMedia
	err := c.Fetch(context.Background(), "/movie/603/", url.Values{"append_to_response": {"images"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, "/movie/603", gotPath)
	assert.Equal(t, "secret", gotQuery.Get("api_key"))
	assert.Equal(t, "en-US", gotQuery.Get("language"))
	assert.Equal(t, "images", gotQuery.Get("append_to_response"))
	assert.Equal(t, 603, out.ID)
	assert.Equal(t, "The Matrix", out.Title)
}

func TestFetch_NonSuccessIsTypedUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/movie/1" {
			http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	})

	var out RawMedia
	err := c.Fetch(context.Background(), "movie/1", nil, &out)
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusNotFound, upErr.StatusCode)
	assert.Equal(t, "movie/1", upErr.Endpoint)
	assert.True(t, IsNotFound(err))

	err = c.Fetch(context.Background(), "movie/2", nil, &out)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
}

func TestFetch_TimeoutIsUpstreamErrorWithoutStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	var out RawMedia
	err := c.FetchWithTimeout(context.Background(), "movie/603", nil, &out, 20*time.Millisecond)
	require.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFetch_CacheSkipsSecondRequest(t *testing.T) {
	var calls int32
	store := cache.NewMemoryStore(10, time.Minute, nil)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"id": 1, "name": "Dark"}`))
	}, WithCache(store))

	for i := 0; i < 3; i++ {
		var out RawMedia
		require.NoError(t, c.Fetch(context.Background(), "tv/1", nil, &out))
		assert.Equal(t, "Dark", out.Name)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_FailuresAreNotCached(t *testing.T) {
	var calls int32
	store := cache.NewMemoryStore(10, time.Minute, nil)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id": 1}`))
	}, WithCache(store))

	var out RawMedia
	require.Error(t, c.Fetch(context.Background(), "tv/1", nil, &out))
	require.NoError(t, c.Fetch(context.Background(), "tv/1", nil, &out))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
