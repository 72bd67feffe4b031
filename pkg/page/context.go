package page

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/creemers/site/pkg/logger"
)

type pageIDKey struct{}

// WithID returns a context carrying the page instance id.
func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, pageIDKey{}, id)
}

// IDFromContext returns the page instance id, if any.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(pageIDKey{}).(uuid.UUID)
	return id, ok
}

// LoggerExtractor returns a logger.ContextExtractor that adds the page id
// found in ctx as page_id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := IDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.PageID(id.String()), true
	}
}
