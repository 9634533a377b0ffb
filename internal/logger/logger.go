// Package logger wires request-scoped attributes into slog output.
package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const attrKey contextKey = "attrs"

// ContextHandler is a [slog.Handler] that appends any attributes stored
// on the context to each record before delegating to its base handler.
type ContextHandler struct {
	slog.Handler
}

func NewContextHandler(base slog.Handler) ContextHandler {
	return ContextHandler{Handler: base}
}

// Handle implements [slog.Handler].
func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(attrKey).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, record)
}

// WithAttrs returns a context carrying the given attributes in addition
// to any it already holds. They surface on every record logged through a
// [ContextHandler] with that context.
func WithAttrs(ctx context.Context, toAppend ...slog.Attr) context.Context {
	attrs, _ := ctx.Value(attrKey).([]slog.Attr)
	return context.WithValue(ctx, attrKey, append(attrs[:len(attrs):len(attrs)], toAppend...))
}
