package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinetrack/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_BlocksAfterCapacity(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := utils.RateLimitConfig{Enabled: true, Capacity: 2, RefillInterval: time.Minute, Prefix: "test"}
	h := RateLimit(cfg, rdb, zaptest.NewLogger(t))(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"success":false`)

	// another client has its own bucket
	req = httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_PassThroughWithoutRedis(t *testing.T) {
	cfg := utils.RateLimitConfig{Enabled: true, Capacity: 1, RefillInterval: time.Minute}
	h := RateLimit(cfg, nil, zaptest.NewLogger(t))(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_FailsOpenOnRedisError(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })

	cfg := utils.RateLimitConfig{Enabled: true, Capacity: 1, RefillInterval: time.Minute}
	h := RateLimit(cfg, rdb, zaptest.NewLogger(t))(okHandler())

	mr.Close()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
