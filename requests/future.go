package requests

import (
	"context"
	"sync"
)

// call is the shared lazy-execution core of both future types. The work
// function runs at most once; the outcome is memoized so repeated Awaits
// observe a single network call.
type call[Out any] struct {
	run  func(ctx context.Context) (Out, error)
	once sync.Once
	out  Out
	err  error
}

func (c *call[Out]) await(ctx context.Context) (Out, error) {
	c.once.Do(func() {
		c.out, c.err = c.run(ctx)
		c.run = nil
	})
	return c.out, c.err
}

// Future is the handle returned by a consuming Send. No work happens until
// Await is driven; a handle that is never awaited causes zero transport
// activity. Await may be called from any goroutine; concurrent and repeated
// calls are safe and share one underlying call.
type Future[Out any] struct {
	c call[Out]
}

// NewFuture wraps a work function in a Future. Adaptors use it to stack
// policy around an inner future while keeping the work inside the handle.
func NewFuture[Out any](run func(ctx context.Context) (Out, error)) *Future[Out] {
	return &Future[Out]{c: call[Out]{run: run}}
}

// Await drives the call to completion. Cancelling ctx abandons the in-flight
// call; the transport sees the cancellation and nothing else observes the
// aborted attempt.
func (f *Future[Out]) Await(ctx context.Context) (Out, error) {
	return f.c.await(ctx)
}

// RefFuture is the handle returned by SendRef. It is deliberately a distinct
// type from Future: a RefFuture reads the request's payload when driven, so
// a caller may mutate a field and obtain a fresh RefFuture for each resend of
// the same request, while a Future owns state detached at Send time.
type RefFuture[Out any] struct {
	c call[Out]
}

// NewRefFuture wraps a work function in a RefFuture.
func NewRefFuture[Out any](run func(ctx context.Context) (Out, error)) *RefFuture[Out] {
	return &RefFuture[Out]{c: call[Out]{run: run}}
}

// Await drives the call to completion, reading the originating request's
// payload state as of this moment.
func (f *RefFuture[Out]) Await(ctx context.Context) (Out, error) {
	return f.c.await(ctx)
}
