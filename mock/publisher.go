package mock

import (
	"context"

	"github.com/mwalczak/clipmark"
)

var _ clipmark.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of clipmark.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, title, content string) (string, error)
}

func (p *Publisher) Publish(ctx context.Context, title, content string) (string, error) {
	return p.PublishFn(ctx, title, content)
}

var _ clipmark.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of clipmark.Notifier.
type Notifier struct {
	ClipSucceededFn func(ctx context.Context, title, url string) error
	ClipFailedFn    func(ctx context.Context, url string, cause error) error
}

func (n *Notifier) ClipSucceeded(ctx context.Context, title, url string) error {
	return n.ClipSucceededFn(ctx, title, url)
}

func (n *Notifier) ClipFailed(ctx context.Context, url string, cause error) error {
	return n.ClipFailedFn(ctx, url, cause)
}
