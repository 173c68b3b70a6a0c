package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// FromContext returns the logger stored in ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func child(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, add(FromContext(ctx).With()).Logger())
}

// With adds arbitrary fields to the logger in ctx.
func With(ctx context.Context, fields map[string]any) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Fields(fields) })
}

func WithComponent(ctx context.Context, component string) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("component", component) })
}

// WithWindow tags entries with the X window id in hex, as xprop and xwininfo print it.
func WithWindow(ctx context.Context, id entity.WindowID) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Hex("window", windowBytes(id)) })
}

func windowBytes(id entity.WindowID) []byte {
	return []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
}
