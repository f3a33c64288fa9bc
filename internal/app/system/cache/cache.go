// Package cache is a thin cache-aside layer over Redis for computed
// dashboard data. All methods degrade gracefully: when Redis is down or
// not configured, reads miss and writes are dropped, and the caller
// falls through to Mongo.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache wraps a Redis client. A nil *Cache or a Cache with a nil client
// is valid and behaves as an always-miss cache.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

// New creates a cache over the given Redis client. client may be nil.
func New(client *redis.Client, logger *zap.Logger) *Cache {
	return &Cache{rdb: client, log: logger}
}

// Enabled reports whether a Redis backend is attached.
func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON loads key into dst. Returns false on miss, Redis failure, or
// undecodable payload (the stale entry is best-effort removed).
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("cache entry undecodable, dropping", zap.String("key", key), zap.Error(err))
		c.rdb.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores v under key with a TTL. Failures are logged and ignored.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes keys. Failures are logged and ignored.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return errors.New("redis not configured")
	}
	return c.rdb.Ping(ctx).Err()
}
