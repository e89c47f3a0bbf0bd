package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"cinetrack/internal/data/entity"
	"cinetrack/internal/data/repository"
	"cinetrack/internal/tmdb"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

func newTMDB(t *testing.T, handler http.HandlerFunc) *tmdb.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return tmdb.NewClient(tmdb.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, zaptest.NewLogger(t))
}

// ==================== FAVORITES ====================

type fakeFavoriteRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{rows: map[uuid.UUID]*entity.Favorite{}}
}

func (r *fakeFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.rows {
		if f.UserID == favorite.UserID && f.TmdbID == favorite.TmdbID && f.ItemType == favorite.ItemType {
			return repository.ErrDuplicate
		}
	}
	cp := *favorite
	r.rows[favorite.ID] = &cp
	return nil
}

func (r *fakeFavoriteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.rows[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFavoriteRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Favorite
	for _, f := range r.rows {
		if f.UserID == userID {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFavoriteRepo) FindByUserAndMedia(ctx context.Context, userID uuid.UUID, tmdbID int, itemType entity.MediaType) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.rows {
		if f.UserID == userID && f.TmdbID == tmdbID && f.ItemType == itemType {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("delete favorite %s: %w", id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeFavoriteRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// ==================== LIBRARY ====================

type fakeLibraryRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.LibraryItem
}

func newFakeLibraryRepo() *fakeLibraryRepo {
	return &fakeLibraryRepo{rows: map[uuid.UUID]*entity.LibraryItem{}}
}

func (r *fakeLibraryRepo) Create(ctx context.Context, item *entity.LibraryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.rows {
		if i.UserID == item.UserID && i.TmdbID == item.TmdbID && i.ItemType == item.ItemType {
			return repository.ErrDuplicate
		}
	}
	cp := *item
	r.rows[item.ID] = &cp
	return nil
}

func (r *fakeLibraryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.LibraryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.rows[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeLibraryRepo) FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.LibraryStatus) ([]*entity.LibraryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LibraryItem
	for _, i := range r.rows {
		if i.UserID != userID || (status != nil && i.Status != *status) {
			continue
		}
		cp := *i
		out = append(out, &cp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.After(out[b].UpdatedAt) })
	return out, nil
}

func (r *fakeLibraryRepo) FindByUserAndMedia(ctx context.Context, userID uuid.UUID, tmdbID int, itemType entity.MediaType) (*entity.LibraryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.rows {
		if i.UserID == userID && i.TmdbID == tmdbID && i.ItemType == itemType {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLibraryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LibraryStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	i.Status = status
	i.UpdatedAt = updatedAt
	return nil
}

func (r *fakeLibraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// ==================== REVIEWS ====================

type fakeReviewRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*entity.Review
	authors map[uuid.UUID]string
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{rows: map[uuid.UUID]*entity.Review{}, authors: map[uuid.UUID]string{}}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *review
	r.rows[review.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rv, ok := r.rows[id]; ok {
		cp := *rv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeReviewRepo) sorted(keep func(*entity.Review) bool) []*entity.Review {
	var out []*entity.Review
	for _, rv := range r.rows {
		if keep(rv) {
			cp := *rv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func (r *fakeReviewRepo) FindByMedia(ctx context.Context, tmdbID int, itemType entity.MediaType, limit, offset int) ([]*entity.ReviewWithAuthor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.sorted(func(rv *entity.Review) bool { return rv.TmdbID == tmdbID && rv.ItemType == itemType })
	var out []*entity.ReviewWithAuthor
	for _, rv := range paginate(rows, limit, offset) {
		out = append(out, &entity.ReviewWithAuthor{Review: *rv, AuthorName: r.authors[rv.UserID]})
	}
	return out, nil
}

func (r *fakeReviewRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.sorted(func(rv *entity.Review) bool { return rv.UserID == userID })
	return paginate(rows, limit, offset), nil
}

func (r *fakeReviewRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rv := range r.rows {
		if rv.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[review.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *review
	r.rows[review.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeReviewRepo) GetMediaStats(ctx context.Context, tmdbID int, itemType entity.MediaType) (float64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, n int64
	for _, rv := range r.rows {
		if rv.TmdbID == tmdbID && rv.ItemType == itemType {
			sum += int64(rv.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}

// ==================== ACCOUNTS ====================

type fakeUserRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *user
	r.rows[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.rows[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	r.rows[user.ID] = &cp
	return nil
}

type fakeSessionRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: map[string]*entity.Session{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.rows[session.TokenHash] = &cp
	return nil
}

func (r *fakeSessionRepo) FindValidSession(ctx context.Context, tokenHash string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[tokenHash]
	if !ok || s.RevokedAt != nil || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[tokenHash]
	if !ok || s.RevokedAt != nil {
		return repository.ErrNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

func (r *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, s := range r.rows {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, s := range r.rows {
		if !s.ExpiresAt.After(time.Now()) {
			delete(r.rows, k)
		}
	}
	return nil
}
