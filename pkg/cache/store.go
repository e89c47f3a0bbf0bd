package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store holds raw response bodies by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// MemoryStore keeps raw response bodies in a process-local TTL cache.
type MemoryStore struct {
	cache *TTL[string, []byte]
}

func NewMemoryStore(capacity int, ttl time.Duration, clock Clock) *MemoryStore {
	return &MemoryStore{cache: NewTTL[string, []byte](capacity, ttl, clock)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	return s.cache.Get(key)
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) {
	s.cache.Set(key, value)
}

// RedisStore shares response bodies between instances. A nil client turns it
// into a permanent miss so callers do not need to branch.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "redis")),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}

	val, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("Redis cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) {
	if s.rdb == nil {
		return
	}

	if err := s.rdb.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		s.log.Warn("Redis cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Tiered reads the first store that hits and writes through to all of them.
type Tiered struct {
	stores []Store
}

func NewTiered(stores ...Store) *Tiered {
	return &Tiered{stores: stores}
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, s := range t.stores {
		if val, ok := s.Get(ctx, key); ok {
			// backfill the faster tiers
			for j := 0; j < i; j++ {
				t.stores[j].Set(ctx, key, val)
			}
			return val, true
		}
	}
	return nil, false
}

func (t *Tiered) Set(ctx context.Context, key string, value []byte) {
	for _, s := range t.stores {
		s.Set(ctx, key, value)
	}
}
