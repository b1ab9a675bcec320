package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// Cache stores logical-ref to physical-key resolutions in Redis so the
// serving path can skip the probe sequence on repeat reads.
type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &Cache{client: rdb}
}

func (c *Cache) GetResolvedKey(ctx context.Context, ref string) (string, error) {
	val, err := c.client.Get(ctx, cacheKey(ref)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetResolvedKey(ctx context.Context, ref, fileKey string, ttl time.Duration) {
	if err := c.client.Set(ctx, cacheKey(ref), fileKey, ttl).Err(); err != nil {
		// a failed cache write only costs the next reader a probe walk
		log.Printf("failed to cache resolved key for %q: %v", ref, err)
	}
}

func (c *Cache) DeleteResolvedKey(ctx context.Context, ref string) error {
	if err := c.client.Del(ctx, cacheKey(ref)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func cacheKey(ref string) string {
	return "resolved_key:" + ref
}
