package mock

import (
	"context"

	"github.com/mwalczak/clipmark"
)

var _ clipmark.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of clipmark.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, markdown string) (*clipmark.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, markdown string) (*clipmark.Summary, error) {
	return s.SummarizeFn(ctx, title, markdown)
}
