package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisInvalidator publishes invalidated view paths on a pub/sub channel.
// Subscribers (frontends, edge caches) drop whatever they keyed on the path.
type RedisInvalidator struct {
	Client  *redis.Client
	Channel string
}

func NewRedisInvalidator(addr string, channel string) (*RedisInvalidator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisInvalidator{Client: client, Channel: channel}, nil
}

func (r *RedisInvalidator) Invalidate(ctx context.Context, path string) error {
	if err := r.Client.Publish(ctx, r.Channel, path).Err(); err != nil {
		return fmt.Errorf("publish invalidation for %s: %w", path, err)
	}
	return nil
}

func (r *RedisInvalidator) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}

// NoopInvalidator satisfies the invalidator port where no redis is configured,
// in tests and in the worker process.
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(context.Context, string) error { return nil }
