// Package cachestore defines the key-value store consumed by the cache
// adaptor, with in-memory and Redis implementations in subpackages.
package cachestore

import (
	"context"
	"time"
)

// Store is a TTL-aware byte store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get retrieves the data stored under key. A miss (or an expired
	// entry) returns nil data and a nil error; errors are reserved for
	// store failures.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}
