package clipmark

import "context"

// Uploader re-hosts article images on an image host.
type Uploader interface {
	// UploadImages downloads each image and uploads it to the image
	// host, returning one mapping entry per input reference. A failed
	// image maps to its original URL (identity fallback); per-image
	// failures never fail the batch. An empty input returns an empty
	// mapping without network activity.
	UploadImages(ctx context.Context, images []ImageRef) (URLMapping, error)
}

// HostLimiter rate-limits outbound requests per host.
type HostLimiter interface {
	// Wait blocks until the limit allows a request to the host, or the
	// context is canceled.
	Wait(ctx context.Context, host string) error
}
