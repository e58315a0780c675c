package mock

import (
	"context"

	"github.com/mwalczak/clipmark"
)

var _ clipmark.Clipper = (*Clipper)(nil)

// Clipper is a mock implementation of clipmark.Clipper.
type Clipper struct {
	ClipFn func(ctx context.Context, url string) (*clipmark.Clip, error)
}

func (c *Clipper) Clip(ctx context.Context, url string) (*clipmark.Clip, error) {
	return c.ClipFn(ctx, url)
}
