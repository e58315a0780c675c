package clipmark

import "context"

// Page holds the result of fetching an article URL.
type Page struct {
	// Title is the article title, resolved from page metadata with a
	// fallback chain (og:title, <title>, first <h1>).
	Title string

	// RawHTML is the document exactly as fetched.
	RawHTML string

	// CleanedHTML is RawHTML with lazy-load image attributes rewritten
	// (data-src becomes src) so downstream conversion sees real sources.
	CleanedHTML string
}

// Fetcher retrieves article pages over the network.
type Fetcher interface {
	// Fetch downloads the page at url and returns it with the title
	// resolved. A network failure or non-2xx response is fatal to the
	// clip and is returned as an error.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// PageMeta holds descriptive metadata recovered from a page, used for
// front matter.
type PageMeta struct {
	Author      string
	Date        string
	Description string
}

// MetaExtractor recovers author, date and description from raw HTML.
// Absent fields are empty strings, never errors.
type MetaExtractor interface {
	ExtractMeta(html string) (*PageMeta, error)
}
