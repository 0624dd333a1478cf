package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"route-summary-service/internal/platform/obs"
)

// RedisSummaryCache stores encoded summary reports in Redis.
type RedisSummaryCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisSummaryCache connects to the Redis instance at url, e.g.
// "redis://localhost:6379/0".
func NewRedisSummaryCache(url string) (*RedisSummaryCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis summary cache: parse url: %w", err)
	}
	return NewRedisSummaryCacheFromClient(redis.NewClient(opt)), nil
}

func NewRedisSummaryCacheFromClient(rdb *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{rdb: rdb, prefix: "routesum:"}
}

// Fetch a cached value. A missing key is not an error.
func (c *RedisSummaryCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "summary.cache.Get")(&err)

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get summary cache: key must not be empty")
	}

	b, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get summary cache key=%q: %w", key, err)
	}
	return b, true, nil
}

// Store a value. A zero ttl keeps the entry until evicted.
func (c *RedisSummaryCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("put summary cache: key must not be empty")
	}

	if err := c.rdb.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("put summary cache key=%q: %w", key, err)
	}
	return nil
}

func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisSummaryCache) Close() error {
	return c.rdb.Close()
}
