package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	likeCountTTL       = 24 * time.Hour
	likeCountKeyPrefix = "like:cnt:post"
)

// LikeCache keeps per-post like counts in redis so feed and like listings
// avoid a COUNT(*) per post. Every method tolerates a nil client and every
// error is advisory: the database count is the source of truth and callers
// fall back to it.
type LikeCache struct {
	client *redis.Client
}

func NewLikeCache(client *redis.Client) *LikeCache {
	return &LikeCache{client: client}
}

func (c *LikeCache) key(postID uint) string {
	return fmt.Sprintf("%s:%d", likeCountKeyPrefix, postID)
}

// Get returns (count, true) on a cache hit and (0, false) on a miss or
// when the cache is disabled.
func (c *LikeCache) Get(ctx context.Context, postID uint) (int64, bool) {
	if c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, c.key(postID)).Int64()
	if err != nil {
		return 0, false
	}
	return val, true
}

// Set backfills the count after a database read.
func (c *LikeCache) Set(ctx context.Context, postID uint, count int64) {
	if c.client == nil {
		return
	}
	_ = c.client.Set(ctx, c.key(postID), count, likeCountTTL).Err()
}

// Incr bumps the cached count if one exists. A missing key stays missing so
// the next read backfills from the database instead of starting from zero.
func (c *LikeCache) Incr(ctx context.Context, postID uint) {
	c.adjust(ctx, postID, +1)
}

// Decr lowers the cached count if one exists.
func (c *LikeCache) Decr(ctx context.Context, postID uint) {
	c.adjust(ctx, postID, -1)
}

func (c *LikeCache) adjust(ctx context.Context, postID uint, delta int64) {
	if c.client == nil {
		return
	}
	k := c.key(postID)
	if _, err := c.client.Get(ctx, k).Result(); err != nil {
		// Missing or unreachable; leave it for the next read to backfill.
		return
	}
	_ = c.client.IncrBy(ctx, k, delta).Err()
	_ = c.client.Expire(ctx, k, likeCountTTL).Err()
}

// Invalidate drops the cached count, used when a post is deleted.
func (c *LikeCache) Invalidate(ctx context.Context, postID uint) {
	if c.client == nil {
		return
	}
	_ = c.client.Del(ctx, c.key(postID)).Err()
}
