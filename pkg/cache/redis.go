package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	gkerrors "github.com/matzehuels/guidekit/pkg/errors"
)

// DefaultRedisPrefix namespaces every key written to Redis.
const DefaultRedisPrefix = "guidekit:"

// RedisCache stores entries in Redis with native expiry.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to a redis:// or rediss:// URL and pings it,
// retrying transient failures.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	if err := gkerrors.ValidateRedisURL(url); err != nil {
		return nil, err
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, gkerrors.Wrap(gkerrors.ErrCodeInvalidConfig, err, "parse redis url")
	}

	client := redis.NewClient(opt)
	err = connect(ctx, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opt.Addr, err)
	}
	return NewRedisCacheFromClient(client, DefaultRedisPrefix), nil
}

// connect pings until the server answers. Only connection-level failures
// are retried; a rejected AUTH or SELECT fails on the first attempt.
func connect(ctx context.Context, ping func(context.Context) error) error {
	err := Retry(ctx, backendAttempts, backendDelay, func() error {
		return transient(ping(ctx))
	})
	return unwrapRetryable(err)
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get retries dropped connections; a missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := Retry(ctx, backendAttempts, backendDelay, func() error {
		var err error
		data, err = c.client.Get(ctx, c.prefix+key).Bytes()
		return transient(err)
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unwrapRetryable(err)
	}
	return data, true, nil
}

// Set stores data. A ttl of zero never expires.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := Retry(ctx, backendAttempts, backendDelay, func() error {
		return transient(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
	return unwrapRetryable(err)
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
