package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small read-through cache for public menu payloads. A nil *Cache
// is valid and turns every operation into a no-op, so callers never need to
// check whether Redis is configured.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		TTL:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, val string) {
	if c == nil {
		return
	}
	// cache failures are invisible to callers; the DB remains authoritative
	_ = c.Client.Set(ctx, key, val, c.TTL).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	_ = c.Client.Del(ctx, keys...).Err()
}
