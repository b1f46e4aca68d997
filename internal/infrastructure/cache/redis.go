package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	"github.com/mauirilio/etf-tracker/pkg/chart"
)

// Config is the Redis cache configuration.
type Config struct {
	Addr     string        `env:"ADDR" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"5m"`
}

// RedisCache implements ChartCache backed by Redis with a TTL per entry.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure RedisCache implements the ChartCache interface
var _ ChartCache = (*RedisCache)(nil)

// NewRedisCache creates a new Redis-backed chart cache.
func NewRedisCache(config Config) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	return &RedisCache{
		client: client,
		ttl:    config.TTL,
	}
}

// ChartKey builds the cache key for one chart render.
func ChartKey(assetType etf.AssetType, q chart.Query) string {
	if q.Granularity == chart.GranularityRange {
		return fmt.Sprintf("chart:%s:%s:%s:%s",
			assetType, q.Granularity,
			q.Start.Format("2006-01-02"), q.End.Format("2006-01-02"))
	}
	return fmt.Sprintf("chart:%s:%s:%d", assetType, q.Granularity, q.Window)
}

// GetChart returns the cached buckets for a key, or (nil, nil) on a miss.
func (r *RedisCache) GetChart(ctx context.Context, key string) ([]chart.Bucket, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chart from cache: %w", err)
	}

	var buckets []chart.Bucket
	if err := json.Unmarshal([]byte(data), &buckets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached chart: %w", err)
	}

	return buckets, nil
}

// SetChart stores the buckets for a key with the configured TTL.
func (r *RedisCache) SetChart(ctx context.Context, key string, buckets []chart.Bucket) error {
	data, err := json.Marshal(buckets)
	if err != nil {
		return fmt.Errorf("failed to marshal chart: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set chart in cache: %w", err)
	}

	return nil
}

// Ping checks the Redis connection.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying Redis client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
