package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the like-count cache, or nil when no
// REDIS_ADDR is configured or the server is unreachable. The cache is
// optional; callers fall back to database counts.
func ConnectRedis(logger *slog.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, like-count cache disabled", "addr", addr, "error", err)
		return nil
	}
	return client
}
