package mock

import (
	"context"

	"github.com/mwalczak/clipmark"
)

var _ clipmark.ClipStore = (*ClipStore)(nil)

// ClipStore is a mock implementation of clipmark.ClipStore.
type ClipStore struct {
	CreateClipFn   func(ctx context.Context, clip *clipmark.Clip) error
	FindClipByIDFn func(ctx context.Context, id string) (*clipmark.Clip, error)
	FindClipsFn    func(ctx context.Context, filter clipmark.ClipFilter) ([]*clipmark.Clip, error)
	DeleteClipFn   func(ctx context.Context, id string) error
}

func (s *ClipStore) CreateClip(ctx context.Context, clip *clipmark.Clip) error {
	return s.CreateClipFn(ctx, clip)
}

func (s *ClipStore) FindClipByID(ctx context.Context, id string) (*clipmark.Clip, error) {
	return s.FindClipByIDFn(ctx, id)
}

func (s *ClipStore) FindClips(ctx context.Context, filter clipmark.ClipFilter) ([]*clipmark.Clip, error) {
	return s.FindClipsFn(ctx, filter)
}

func (s *ClipStore) DeleteClip(ctx context.Context, id string) error {
	return s.DeleteClipFn(ctx, id)
}
