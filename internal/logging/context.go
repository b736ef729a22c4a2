package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

// FromContext returns the logger attached to ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// ForComponent returns the logger of ctx with the component name added to its
// prefix, as in "gotree/kmeans".
func ForComponent(ctx context.Context, component string) *log.Logger {
	logger := FromContext(ctx)
	prefix := component
	if p := logger.GetPrefix(); p != "" {
		prefix = p + "/" + component
	}
	return logger.WithPrefix(prefix)
}
