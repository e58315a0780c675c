package slog

import (
	"log/slog"
	"time"

	"github.com/mwalczak/clipmark"
)

// Ensure LoggingConverter implements clipmark.Converter.
var _ clipmark.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with operation logging. The per-source
// image counts make discovery regressions visible in logs.
type LoggingConverter struct {
	next   clipmark.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next clipmark.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (conv *clipmark.Conversion, err error) {
	defer func(begin time.Time) {
		var strategy clipmark.Strategy
		var structured, tagged, merged int
		if conv != nil {
			strategy = conv.Strategy
			structured = conv.StructuredCount
			tagged = conv.TaggedCount
			merged = len(conv.Images)
		}
		c.logger.Info("markdown conversion",
			"strategy", string(strategy),
			"structured_images", structured,
			"tagged_images", tagged,
			"merged_images", merged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}
