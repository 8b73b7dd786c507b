// Package retry re-sends failed requests with exponential backoff. Only
// transport failures and flood-limit responses are retried; every attempt
// re-invokes the inner request's borrow-mode send, so the payload is encoded
// fresh each time and mutations between attempts are picked up.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/tgwire/tgwire/requests"
)

// Policy controls the retry schedule.
type Policy struct {
	// MaxAttempts is the total number of sends, the first included.
	MaxAttempts int
	// BaseDelay is the delay before the first retry; it doubles per
	// attempt.
	BaseDelay time.Duration
	// MaxDelay caps the backoff. Zero means uncapped.
	MaxDelay time.Duration
}

// DefaultPolicy retries twice with a 250ms starting backoff.
var DefaultPolicy = Policy{MaxAttempts: 3, BaseDelay: 250 * time.Millisecond, MaxDelay: 10 * time.Second}

// Request wraps an inner request with a retry policy.
type Request[Out any] struct {
	inner  requests.Request[Out]
	policy Policy
}

var _ requests.Request[struct{}] = (*Request[struct{}])(nil)

// Wrap couples inner with policy.
func Wrap[Out any](inner requests.Request[Out], policy Policy) *Request[Out] {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Request[Out]{inner: inner, policy: policy}
}

// Send returns a future running the retry loop. The inner request stays
// alive inside the wrapper, so the consuming mode can still re-invoke
// borrow-mode sends per attempt.
func (r *Request[Out]) Send() *requests.Future[Out] {
	return requests.NewFuture(r.attempt)
}

// SendRef returns a borrow-mode future running the same retry loop.
func (r *Request[Out]) SendRef() *requests.RefFuture[Out] {
	return requests.NewRefFuture(r.attempt)
}

func (r *Request[Out]) attempt(ctx context.Context) (Out, error) {
	var (
		out Out
		err error
	)
	for i := 0; i < r.policy.MaxAttempts; i++ {
		if i > 0 {
			if werr := r.wait(ctx, i, err); werr != nil {
				return out, werr
			}
		}
		out, err = r.inner.SendRef().Await(ctx)
		if err == nil || !Retryable(err) {
			return out, err
		}
	}
	return out, err
}

// wait sleeps out the backoff for the given attempt, honoring a flood-limit
// retry_after hint over the computed delay.
func (r *Request[Out]) wait(ctx context.Context, attempt int, cause error) error {
	delay := r.policy.BaseDelay << (attempt - 1)
	if r.policy.MaxDelay > 0 && delay > r.policy.MaxDelay {
		delay = r.policy.MaxDelay
	}
	if after, ok := retryAfter(cause); ok {
		delay = after
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retryable reports whether err is worth re-sending: transport failures that
// are not the caller's own cancellation, and flood-limit API errors.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var reqErr *requests.Error
	if !errors.As(err, &reqErr) {
		return false
	}
	switch reqErr.Kind {
	case requests.KindTransport:
		return true
	case requests.KindAPI:
		_, ok := retryAfter(err)
		return ok
	}
	return false
}

func retryAfter(err error) (time.Duration, bool) {
	var apiErr *requests.APIError
	if errors.As(err, &apiErr) && apiErr.Parameters != nil && apiErr.Parameters.RetryAfter > 0 {
		return time.Duration(apiErr.Parameters.RetryAfter) * time.Second, true
	}
	return 0, false
}
