// Package memory provides an in-memory cachestore.Store backed by
// github.com/hashicorp/golang-lru/v2 with per-entry TTL.
package memory

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	data      []byte
	expiresAt time.Time // zero = no expiration
}

func (e *entry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// Store implements cachestore.Store in memory. Eviction is LRU on top of
// per-entry expiry; expired entries are dropped lazily on access.
type Store struct {
	cache *lru.Cache[string, *entry]
}

// New creates a store bounded to maxItems entries.
func New(maxItems int) (*Store, error) {
	cache, err := lru.New[string, *entry](maxItems)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	e, ok := s.cache.Get(key)
	if !ok {
		return nil, nil
	}
	if e.expired() {
		s.cache.Remove(key)
		return nil, nil
	}
	return e.data, nil
}

func (s *Store) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := &entry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.cache.Add(key, e)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

func (s *Store) Close() error {
	s.cache.Purge()
	return nil
}
