package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// WithLogger stores logger in ctx. A nil logger stores Default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or Default.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok {
			return logger
		}
	}
	return Default()
}

// WithCatalog tags the context logger with the backing document path.
func WithCatalog(ctx context.Context, path string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("catalog", path) })
}

// WithOperation tags the context logger with the running operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("operation", operation) })
}

// WithEntry tags the context logger with an entry ID.
func WithEntry(ctx context.Context, entryID string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("entry_id", entryID) })
}

// WithIndex tags the context logger with a positional index.
func WithIndex(ctx context.Context, index int) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Int("index", index) })
}

// WithError attaches err to the context logger. A nil err leaves ctx as is.
func WithError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Err(err) })
}

func with(ctx context.Context, fn func(zerolog.Context) zerolog.Context) context.Context {
	logger := fn(FromContext(ctx).With()).Logger()
	return WithLogger(ctx, &logger)
}
