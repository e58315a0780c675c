// Package obsidian publishes finished documents to an Obsidian vault
// through the Local REST API plugin.
package obsidian

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mwalczak/clipmark"
)

// DefaultTimeout is the default timeout for vault requests.
const DefaultTimeout = 10 * time.Second

// DefaultRetryDelays returns the backoff delays for vault writes: 1s, 2s, 4s.
// Only network errors are retried; an HTTP error status is authoritative.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Publisher implements clipmark.Publisher at compile time.
var _ clipmark.Publisher = (*Publisher)(nil)

// Publisher writes documents into a vault via PUT /vault/{path}.
type Publisher struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	basePath    string
	dateFolders bool
	retryDelays []time.Duration
	now         func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithHTTPClient sets the HTTP client used for vault requests.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Publisher) { p.client = client }
}

// WithBasePath sets the vault folder notes are written under.
func WithBasePath(path string) Option {
	return func(p *Publisher) { p.basePath = strings.Trim(path, "/") }
}

// WithDateFolders groups notes under YYYY/MM subfolders.
func WithDateFolders(enabled bool) Option {
	return func(p *Publisher) { p.dateFolders = enabled }
}

// WithRetryDelays sets the backoff delays for network errors.
// Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(p *Publisher) { p.retryDelays = delays }
}

// WithNow sets the clock used for filenames. Defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(p *Publisher) { p.now = now }
}

// NewPublisher creates a Publisher for the vault at baseURL, authenticating
// with apiKey.
func NewPublisher(baseURL, apiKey string, opts ...Option) *Publisher {
	p := &Publisher{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		basePath:    "Clippings",
		retryDelays: DefaultRetryDelays(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: DefaultTimeout}
	}
	return p
}

// Publish writes the document under a timestamped, title-derived path and
// returns that path.
func (p *Publisher) Publish(ctx context.Context, title, content string) (string, error) {
	notePath := p.notePath(title)

	var lastErr error
	for attempt := 0; attempt <= len(p.retryDelays); attempt++ {
		err := p.put(ctx, notePath, content)
		if err == nil {
			return notePath, nil
		}
		lastErr = err

		// HTTP-level errors carry an app code and are authoritative.
		if clipmark.ErrorCode(err) != clipmark.EINTERNAL || attempt >= len(p.retryDelays) {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.retryDelays[attempt]):
		}
	}
	return "", lastErr
}

func (p *Publisher) put(ctx context.Context, notePath, content string) error {
	endpoint := p.baseURL + "/vault/" + escapePath(notePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, strings.NewReader(content))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "text/markdown")

	resp, err := p.client.Do(req)
	if err != nil {
		return clipmark.Errorf(clipmark.EINTERNAL, "vault request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return clipmark.Errorf(clipmark.EUNAVAILABLE, "vault write HTTP %d for %s", resp.StatusCode, notePath)
	}
	return nil
}

// notePath builds "<base>[/YYYY/MM]/YYYYMMDD_HHMM_<title>.md".
func (p *Publisher) notePath(title string) string {
	now := p.now()

	var sb strings.Builder
	if p.basePath != "" {
		sb.WriteString(p.basePath)
		sb.WriteString("/")
	}
	if p.dateFolders {
		sb.WriteString(now.Format("2006/01"))
		sb.WriteString("/")
	}
	sb.WriteString(clipmark.NoteFileName(title, now))
	return sb.String()
}

// escapePath escapes each path segment, keeping separators.
func escapePath(notePath string) string {
	segments := strings.Split(notePath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
