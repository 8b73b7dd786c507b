// Package trace logs the outcome and latency of every driven send through a
// slog.Logger. Undriven futures log nothing.
package trace

import (
	"context"
	"log/slog"
	"time"

	"github.com/tgwire/tgwire/requests"
)

// Request wraps an inner request with structured logging.
type Request[Out any] struct {
	inner  requests.Request[Out]
	log    *slog.Logger
	method string
}

var _ requests.Request[struct{}] = (*Request[struct{}])(nil)

// Wrap couples inner with log. method names the call in log records.
func Wrap[Out any](inner requests.Request[Out], log *slog.Logger, method string) *Request[Out] {
	return &Request[Out]{inner: inner, log: log, method: method}
}

// Send consumes the inner request and logs around its future.
func (r *Request[Out]) Send() *requests.Future[Out] {
	fut := r.inner.Send()
	return requests.NewFuture(func(ctx context.Context) (Out, error) {
		return r.observe(ctx, "send", fut.Await)
	})
}

// SendRef borrows the inner request and logs around its future.
func (r *Request[Out]) SendRef() *requests.RefFuture[Out] {
	return requests.NewRefFuture(func(ctx context.Context) (Out, error) {
		return r.observe(ctx, "send_ref", func(ctx context.Context) (Out, error) {
			return r.inner.SendRef().Await(ctx)
		})
	})
}

func (r *Request[Out]) observe(ctx context.Context, mode string, forward func(context.Context) (Out, error)) (Out, error) {
	start := time.Now()
	out, err := forward(ctx)
	attrs := []any{
		slog.String("method", r.method),
		slog.String("mode", mode),
		slog.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		r.log.WarnContext(ctx, "request failed", append(attrs, slog.Any("error", err))...)
	} else {
		r.log.DebugContext(ctx, "request done", attrs...)
	}
	return out, err
}
