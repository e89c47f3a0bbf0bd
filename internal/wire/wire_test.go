package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinetrack/internal/data/repository"
	"cinetrack/internal/tmdb"
	"cinetrack/pkg/utils"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T, upstream http.HandlerFunc) (*App, pgxmock.PgxPoolIface) {
	t.Helper()
	log := zaptest.NewLogger(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	client := tmdb.NewClient(tmdb.Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 2 * time.Second}, log)

	config := &utils.Config{
		Session: utils.SessionConfig{Secret: "s3cret", ExpiryHours: 1, BcryptCost: 4},
		CORS:    utils.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	return Wiring(repository.NewRepository(mock, log), client, nil, config, log), mock
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	app, mock := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodDelete, "/api/favorites/0b7e"},
		{http.MethodGet, "/api/library/details"},
		{http.MethodPatch, "/api/library/0b7e"},
		{http.MethodGet, "/api/reviews/me"},
		{http.MethodPost, "/api/reviews"},
		{http.MethodDelete, "/api/admin/reviews/0b7e"},
		{http.MethodGet, "/api/user/profile"},
		{http.MethodPost, "/api/auth/logout"},
	} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.method+" "+route.path)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_PublicRoutes(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/popular":
			w.Write([]byte(`{"page":2,"total_pages":10,"total_results":200,"results":[{"id":1,"title":"A"}]}`))
		case "/genre/tv/list":
			w.Write([]byte(`{"genres":[{"id":18,"name":"Drama"}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"OK"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/popular?page=2", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_pages":10`)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/series/genres", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Drama"`)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/series/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
