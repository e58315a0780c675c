// Package trafilatura recovers page metadata for front matter using
// go-trafilatura's metadata extraction.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mwalczak/clipmark"
)

// Ensure Extractor implements clipmark.MetaExtractor at compile time.
var _ clipmark.MetaExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover author, date and description
// from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMeta processes raw HTML and returns whatever metadata the page
// carries. Fields the page does not declare come back empty; extraction
// failure on an otherwise parseable page is not an error.
func (e *Extractor) ExtractMeta(rawHTML string) (*clipmark.PageMeta, error) {
	if rawHTML == "" {
		return &clipmark.PageMeta{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Metadata is an enrichment; an unextractable page yields
		// empty fields rather than failing the clip.
		return &clipmark.PageMeta{}, nil
	}

	meta := &clipmark.PageMeta{
		Author:      result.Metadata.Author,
		Description: result.Metadata.Description,
	}
	if !result.Metadata.Date.IsZero() {
		meta.Date = result.Metadata.Date.Format("2006-01-02")
	}

	return meta, nil
}
