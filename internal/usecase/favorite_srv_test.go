package usecase

import (
	"context"
	"fmt"
	"testing"

	"cinetrack/internal/dto/request"
	"cinetrack/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newFavoriteService(t *testing.T, failing ...int) (FavoriteService, *fakeFavoriteRepo) {
	repo := newFakeFavoriteRepo()
	log := zaptest.NewLogger(t)
	return NewFavoriteService(repo, NewHydrator(newTMDB(t, mediaUpstream(failing...)), log), log), repo
}

func TestFavoriteCreate_DuplicateIsConflict(t *testing.T) {
	svc, repo := newFavoriteService(t)
	ctx := context.Background()
	user := uuid.New()
	req := &request.CreateFavoriteRequest{TmdbID: 603, ItemType: "movie"}

	created, err := svc.Create(ctx, user, req)
	require.NoError(t, err)
	assert.Equal(t, 603, created.TmdbID)
	assert.Equal(t, user.String(), created.UserID)

	_, err = svc.Create(ctx, user, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, 400, apperror.KindOf(err).HTTPStatus())
	assert.Equal(t, 1, repo.count())

	// same title as a series is a different favorite
	_, err = svc.Create(ctx, user, &request.CreateFavoriteRequest{TmdbID: 603, ItemType: "series"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.count())
}

func TestFavoriteCreate_Validation(t *testing.T) {
	svc, _ := newFavoriteService(t)

	tests := []struct {
		name string
		req  request.CreateFavoriteRequest
	}{
		{"missing id", request.CreateFavoriteRequest{ItemType: "movie"}},
		{"negative id", request.CreateFavoriteRequest{TmdbID: -1, ItemType: "movie"}},
		{"bad type", request.CreateFavoriteRequest{TmdbID: 1, ItemType: "person"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), uuid.New(), &tt.req)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestFavoriteDelete_Ownership(t *testing.T) {
	svc, repo := newFavoriteService(t)
	ctx := context.Background()
	owner, other := uuid.New(), uuid.New()

	fav, err := svc.Create(ctx, owner, &request.CreateFavoriteRequest{TmdbID: 11, ItemType: "movie"})
	require.NoError(t, err)

	err = svc.Delete(ctx, other, fav.ID)
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))
	assert.Equal(t, 1, repo.count())

	err = svc.Delete(ctx, other, uuid.NewString())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = svc.Delete(ctx, other, "not-a-uuid")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	require.NoError(t, svc.Delete(ctx, owner, fav.ID))
	assert.Equal(t, 0, repo.count())
}

func TestFavoriteListDetails_PartialFailure(t *testing.T) {
	svc, _ := newFavoriteService(t, 22)
	ctx := context.Background()
	user := uuid.New()

	for _, id := range []int{21, 22, 23} {
		_, err := svc.Create(ctx, user, &request.CreateFavoriteRequest{TmdbID: id, ItemType: "movie"})
		require.NoError(t, err)
	}

	details, err := svc.ListDetails(ctx, user)
	require.NoError(t, err)
	require.Len(t, details, 3)

	for _, d := range details {
		if d.TmdbID == 22 {
			assert.True(t, d.DetailsUnavailable)
			assert.Empty(t, d.Title)
			continue
		}
		assert.False(t, d.DetailsUnavailable)
		// each record carries the metadata of its own title
		assert.Equal(t, fmt.Sprintf("Movie %d", d.TmdbID), d.Title)
	}
}

func TestFavoriteCheck(t *testing.T) {
	svc, _ := newFavoriteService(t)
	ctx := context.Background()
	user := uuid.New()

	res, err := svc.Check(ctx, user, 5, "movie")
	require.NoError(t, err)
	assert.False(t, res.Favorited)
	assert.Nil(t, res.ID)

	fav, err := svc.Create(ctx, user, &request.CreateFavoriteRequest{TmdbID: 5, ItemType: "movie"})
	require.NoError(t, err)

	res, err = svc.Check(ctx, user, 5, "movie")
	require.NoError(t, err)
	assert.True(t, res.Favorited)
	require.NotNil(t, res.ID)
	assert.Equal(t, fav.ID, *res.ID)

	_, err = svc.Check(ctx, user, 5, "book")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
