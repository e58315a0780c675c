package mock

import (
	"context"

	"github.com/mwalczak/clipmark"
)

var _ clipmark.Uploader = (*Uploader)(nil)

// Uploader is a mock implementation of clipmark.Uploader.
type Uploader struct {
	UploadImagesFn func(ctx context.Context, images []clipmark.ImageRef) (clipmark.URLMapping, error)
}

func (u *Uploader) UploadImages(ctx context.Context, images []clipmark.ImageRef) (clipmark.URLMapping, error) {
	return u.UploadImagesFn(ctx, images)
}

var _ clipmark.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of clipmark.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
