// Package throttle rate-limits request sends with a shared token bucket.
// The wait for a token happens inside the returned future, so wrapping a
// request costs nothing until it is awaited; cancelling the await abandons
// the wait without consuming a token.
package throttle

import (
	"context"

	"github.com/tgwire/tgwire/requests"
	"golang.org/x/time/rate"
)

// Request wraps an inner request and defers its send until the limiter
// grants a token. One limiter is typically shared across every request bound
// to the same transport.
type Request[Out any] struct {
	inner   requests.Request[Out]
	limiter *rate.Limiter
}

var _ requests.Request[struct{}] = (*Request[struct{}])(nil)

// Wrap couples inner with limiter.
func Wrap[Out any](inner requests.Request[Out], limiter *rate.Limiter) *Request[Out] {
	return &Request[Out]{inner: inner, limiter: limiter}
}

// Send consumes the inner request. The token wait and the inner call both
// run inside the returned future.
func (r *Request[Out]) Send() *requests.Future[Out] {
	fut := r.inner.Send()
	return requests.NewFuture(func(ctx context.Context) (Out, error) {
		if err := r.limiter.Wait(ctx); err != nil {
			var zero Out
			return zero, err
		}
		return fut.Await(ctx)
	})
}

// SendRef borrows the inner request; the payload is read when the returned
// future runs, after the token wait.
func (r *Request[Out]) SendRef() *requests.RefFuture[Out] {
	return requests.NewRefFuture(func(ctx context.Context) (Out, error) {
		if err := r.limiter.Wait(ctx); err != nil {
			var zero Out
			return zero, err
		}
		return r.inner.SendRef().Await(ctx)
	})
}
