// Package redis provides a Redis-backed cachestore.Store using
// github.com/redis/go-redis/v9. Expiry is delegated to Redis TTLs.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config contains configuration for the Redis store.
type Config struct {
	// Client is the Redis client instance. Required.
	Client *redis.Client

	// KeyPrefix is prepended to every key. Default: "tgwire:cache:".
	KeyPrefix string
}

// Store implements cachestore.Store on Redis.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

// New creates a Redis-backed store.
func New(config Config) (*Store, error) {
	if config.Client == nil {
		return nil, errors.New("redis client is required")
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "tgwire:cache:"
	}
	return &Store{client: config.Client, keyPrefix: config.KeyPrefix}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return res, nil
}

func (s *Store) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
