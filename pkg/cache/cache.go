// Package cache provides a Redis-backed read cache. A nil *Cache is a
// valid no-op cache, so callers do not need to branch on whether Redis
// is configured.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with a fixed TTL. Lookup failures are
// treated as misses: the cache never makes a request fail.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache against the given Redis address. An empty address
// returns nil, which disables caching.
func New(addr, password string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached value for key and whether it was present.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores a value under key for the cache TTL. Errors are dropped.
func (c *Cache) Set(ctx context.Context, key, value string) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, c.ttl).Err()
}

// Invalidate removes a key.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, key).Err()
}
