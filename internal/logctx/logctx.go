// Package logctx enriches slog records with per-call attributes carried in
// the context, so transport logs correlate without threading loggers through
// every layer.
package logctx

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if cd, ok := ctx.Value(callDataKey{}).(*CallData); ok {
		r.AddAttrs(slog.Group("api",
			slog.String("id", cd.CallID),
			slog.String("method", cd.Method),
		))
	}
	return h.Handler.Handle(ctx, r)
}

type callDataKey struct{}

type CallData struct {
	CallID string
	Method string
}

func WithCallData(ctx context.Context, data *CallData) context.Context {
	return context.WithValue(ctx, callDataKey{}, data)
}
