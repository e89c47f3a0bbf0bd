package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRedisStore_RoundTripAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := NewRedisStore(rdb, "tmdb:", 30*time.Second, zaptest.NewLogger(t))
	ctx := context.Background()

	_, ok := store.Get(ctx, "movie/603")
	assert.False(t, ok)

	store.Set(ctx, "movie/603", []byte(`{"id":603}`))

	val, ok := store.Get(ctx, "movie/603")
	require.True(t, ok)
	assert.JSONEq(t, `{"id":603}`, string(val))
	assert.True(t, mr.Exists("tmdb:movie/603"))

	mr.FastForward(31 * time.Second)
	_, ok = store.Get(ctx, "movie/603")
	assert.False(t, ok)
}

func TestRedisStore_NilClientAlwaysMisses(t *testing.T) {
	store := NewRedisStore(nil, "tmdb:", time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"))
	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestTiered_BackfillsFasterTier(t *testing.T) {
	ctx := context.Background()
	fast := NewMemoryStore(10, time.Minute, nil)
	slow := NewMemoryStore(10, time.Minute, nil)
	tiered := NewTiered(fast, slow)

	slow.Set(ctx, "k", []byte("v"))

	val, ok := tiered.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", string(val))

	val, ok = fast.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", string(val))

	tiered.Set(ctx, "other", []byte("x"))
	_, ok = slow.Get(ctx, "other")
	assert.True(t, ok)
}
