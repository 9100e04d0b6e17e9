package cache

import (
	"context"
	"encoding/json"
	"time"

	"moviehub/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a small JSON read-through cache on top of Redis. A nil *Cache is
// valid and behaves as a permanent miss, so callers never have to branch on
// whether caching is enabled.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func InitCache(config utils.RedisConfig, log *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	return &Cache{
		client: client,
		ttl:    time.Duration(config.TTLMinutes) * time.Minute,
		log:    log.With(zap.String("component", "cache")),
	}, nil
}

// Get unmarshals the cached value for key into dest. Returns false on a
// miss or any Redis error; a cache failure must never fail the request.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache get failed", zap.Error(err), zap.String("key", key))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache decode failed", zap.Error(err), zap.String("key", key))
		return false
	}

	return true
}

// Set stores value under key with the configured TTL
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache encode failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.Error(err), zap.String("key", key))
	}
}

// Delete removes keys, used for invalidation after writes
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache delete failed", zap.Error(err), zap.Strings("keys", keys))
	}
}

// Close releases the underlying client
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
