package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczak/clipmark"
)

// Ensure LoggingUploader implements clipmark.Uploader.
var _ clipmark.Uploader = (*LoggingUploader)(nil)

// LoggingUploader wraps an Uploader with operation logging.
type LoggingUploader struct {
	next   clipmark.Uploader
	logger *slog.Logger
}

// NewLoggingUploader creates a new LoggingUploader.
func NewLoggingUploader(next clipmark.Uploader, logger *slog.Logger) *LoggingUploader {
	return &LoggingUploader{next: next, logger: logger}
}

// UploadImages delegates to the wrapped uploader and logs the batch
// outcome, including how many images kept their original URL.
func (u *LoggingUploader) UploadImages(ctx context.Context, images []clipmark.ImageRef) (mapping clipmark.URLMapping, err error) {
	defer func(begin time.Time) {
		var unchanged int
		for original, resolved := range mapping {
			if original == resolved {
				unchanged++
			}
		}
		u.logger.Info("image batch upload",
			"images", len(images),
			"unchanged", unchanged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return u.next.UploadImages(ctx, images)
}
