package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisOpts configures the shared cache connection.
type RedisOpts struct {
	Addr     string
	Password string
	DB       int
}

// Dial connects to Redis and verifies the connection with PING.
func Dial(ctx context.Context, o RedisOpts, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     o.Addr,
		Password: o.Password,
		DB:       o.DB,

		PoolSize:     10,
		MinIdleConns: 2,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", o.Addr, err)
	}

	logger.Info("connected to redis", zap.String("addr", o.Addr), zap.Int("db", o.DB))
	return rdb, nil
}

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Redis is a TTL cache of JSON encoded values shared through Redis.
type Redis[V any] struct {
	client  redisClient
	prefix  string
	ttl     time.Duration
	metrics Metrics
}

// NewRedis constructs a Redis cache. Keys are stored as prefix + key.
func NewRedis[V any](client redisClient, prefix string, ttl time.Duration, m Metrics) *Redis[V] {
	if m == nil {
		m = nopMetrics{}
	}
	return &Redis[V]{client: client, prefix: prefix, ttl: ttl, metrics: m}
}

// Get returns the value stored under key. A missing key is a miss, not an
// error.
func (c *Redis[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var value V
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.ObserveLookup(false)
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		c.metrics.ObserveLookup(false)
		return value, false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	c.metrics.ObserveLookup(true)
	return value, true, nil
}

// Set stores value under key with the cache TTL.
func (c *Redis[V]) Set(ctx context.Context, key string, value V) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cached %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
