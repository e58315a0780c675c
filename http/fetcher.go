// Package http provides an HTTP-based implementation of clipmark.Fetcher
// for downloading article pages.
package http

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/goquery"
)

// DefaultFetchTimeout is the default timeout for page downloads.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is a desktop browser identity. Some article hosts serve
// a stripped page to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements clipmark.Fetcher at compile time.
var _ clipmark.Fetcher = (*Fetcher)(nil)

// Fetcher downloads article pages over HTTP. It does not execute
// JavaScript; platform-specific script content is handled downstream by
// the normalizer.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page downloads.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// lazySrc matches lazy-load image attributes so downstream conversion sees
// real sources.
var lazySrc = regexp.MustCompile(`data-src="([^"]*)"`)

// Fetch downloads the page at url and resolves its title.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*clipmark.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, clipmark.Errorf(clipmark.EUNAVAILABLE, "fetch failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clipmark.Errorf(clipmark.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clipmark.Errorf(clipmark.EUNAVAILABLE, "reading response for %s: %v", url, err)
	}

	raw := string(body)
	title := goquery.Title(raw)
	if title == "" {
		title = "Untitled"
	}

	return &clipmark.Page{
		Title:       title,
		RawHTML:     raw,
		CleanedHTML: lazySrc.ReplaceAllString(raw, `src="$1"`),
	}, nil
}
