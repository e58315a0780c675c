package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczak/clipmark"
)

// Ensure LoggingPublisher implements clipmark.Publisher.
var _ clipmark.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with operation logging.
type LoggingPublisher struct {
	next   clipmark.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next clipmark.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the operation.
func (p *LoggingPublisher) Publish(ctx context.Context, title, content string) (path string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("note publish",
			"title", title,
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Publish(ctx, title, content)
}
