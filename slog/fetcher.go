// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczak/clipmark"
)

// Ensure LoggingFetcher implements clipmark.Fetcher.
var _ clipmark.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with operation logging.
type LoggingFetcher struct {
	next   clipmark.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next clipmark.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *clipmark.Page, err error) {
	defer func(begin time.Time) {
		var size int
		if page != nil {
			size = len(page.RawHTML)
		}
		f.logger.Info("page fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
