package database

import (
	"context"
	"time"

	"cinetrack/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis when REDIS_ADDR is set. It returns nil when
// Redis is not configured or unreachable; callers degrade by skipping the shared
// cache and the rate limiter.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil
	}

	return client
}
