package mock

import "github.com/mwalczak/clipmark"

var _ clipmark.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor is a mock implementation of clipmark.MetaExtractor.
type MetaExtractor struct {
	ExtractMetaFn func(html string) (*clipmark.PageMeta, error)
}

func (e *MetaExtractor) ExtractMeta(html string) (*clipmark.PageMeta, error) {
	return e.ExtractMetaFn(html)
}
