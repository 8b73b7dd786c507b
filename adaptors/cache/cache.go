// Package cache memoizes successful results in a cachestore.Store. The key
// is derived from the payload's canonical encoding, so two payloads that are
// field-wise equal (unset-ness included) share one cache entry. On a hit the
// inner request is never invoked.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tgwire/tgwire/cachestore"
	"github.com/tgwire/tgwire/requests"
)

// KeyOf derives the cache key for a payload: the method name joined with a
// digest of the payload's wire encoding.
func KeyOf[Out any, P requests.Payload[Out]](p P) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload for cache key: %w", err)
	}
	sum := sha256.Sum256(body)
	return p.MethodName() + ":" + hex.EncodeToString(sum[:]), nil
}

// Request wraps an inner request with result memoization.
type Request[Out any] struct {
	inner requests.Request[Out]
	store cachestore.Store
	key   string
	ttl   time.Duration
}

var _ requests.Request[struct{}] = (*Request[struct{}])(nil)

// Wrap couples inner with store under key. A zero ttl caches without
// expiration. The key is fixed at wrap time; callers that mutate the payload
// between resends should derive a fresh key with KeyOf.
func Wrap[Out any](inner requests.Request[Out], store cachestore.Store, key string, ttl time.Duration) *Request[Out] {
	return &Request[Out]{inner: inner, store: store, key: key, ttl: ttl}
}

// Send consumes the inner request. Lookup, forward, and fill all run inside
// the returned future.
func (r *Request[Out]) Send() *requests.Future[Out] {
	fut := r.inner.Send()
	return requests.NewFuture(func(ctx context.Context) (Out, error) {
		return r.through(ctx, fut.Await)
	})
}

// SendRef borrows the inner request.
func (r *Request[Out]) SendRef() *requests.RefFuture[Out] {
	return requests.NewRefFuture(func(ctx context.Context) (Out, error) {
		return r.through(ctx, func(ctx context.Context) (Out, error) {
			return r.inner.SendRef().Await(ctx)
		})
	})
}

func (r *Request[Out]) through(ctx context.Context, forward func(context.Context) (Out, error)) (Out, error) {
	var out Out
	if data, err := r.store.Get(ctx, r.key); err == nil && data != nil {
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		// Undecodable entry: fall through to the real call and let the
		// fill below replace it.
	}

	out, err := forward(ctx)
	if err != nil {
		return out, err
	}

	if data, merr := json.Marshal(out); merr == nil {
		// Best effort; a failed fill must not fail the call.
		_ = r.store.Set(ctx, r.key, data, r.ttl)
	}
	return out, nil
}
