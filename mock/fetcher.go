package mock

import (
	"context"

	"github.com/mwalczak/clipmark"
)

var _ clipmark.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of clipmark.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*clipmark.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*clipmark.Page, error) {
	return f.FetchFn(ctx, url)
}
