// Package cache provides a Redis-backed cache for geocoding results.
// Geocoding queries are deterministic and the upstream API is rate limited,
// so resolved points are kept for a long TTL.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"vecino-backend-go/internal/geo"
)

const geocodeTTL = 30 * 24 * time.Hour

// GeocodeCache implements geo.Cache on top of Redis.
type GeocodeCache struct {
	client *redis.Client
	logger *zap.Logger
}

// Config holds Redis connection options.
type Config struct {
	Address  string
	Password string
	DB       int
}

// NewGeocodeCache connects to Redis and returns the cache. The connection
// is verified with a ping so a misconfigured address fails at startup, not
// on the first lookup.
func NewGeocodeCache(ctx context.Context, cfg Config, logger *zap.Logger) (*GeocodeCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return &GeocodeCache{client: rdb, logger: logger}, nil
}

// Get returns a cached point for the query, if present. Cache errors are
// logged and treated as misses.
func (c *GeocodeCache) Get(ctx context.Context, key string) (geo.Point, bool) {
	val, err := c.client.Get(ctx, "geocode:"+key).Result()
	if err == redis.Nil {
		return geo.Point{}, false
	}
	if err != nil {
		c.logger.Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
		return geo.Point{}, false
	}
	var point geo.Point
	if err := json.Unmarshal([]byte(val), &point); err != nil {
		c.logger.Warn("geocode cache entry corrupt", zap.String("key", key), zap.Error(err))
		return geo.Point{}, false
	}
	return point, true
}

// Set stores a resolved point. Failures are logged and ignored; caching is
// best effort.
func (c *GeocodeCache) Set(ctx context.Context, key string, p geo.Point) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, "geocode:"+key, raw, geocodeTTL).Err(); err != nil {
		c.logger.Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the Redis connection.
func (c *GeocodeCache) Close() error {
	return c.client.Close()
}
