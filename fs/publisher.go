// Package fs publishes finished documents to a local notes directory. It is
// the vault-free alternative to the REST publisher and names notes the
// same way.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/mwalczak/clipmark"
)

// Ensure Publisher implements clipmark.Publisher at compile time.
var _ clipmark.Publisher = (*Publisher)(nil)

// Publisher writes notes as Markdown files under a base directory.
type Publisher struct {
	baseDir     string
	dateFolders bool
	now         func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithDateFolders groups notes under YYYY/MM subdirectories.
func WithDateFolders(enabled bool) Option {
	return func(p *Publisher) { p.dateFolders = enabled }
}

// WithNow sets the clock used for filenames. Defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(p *Publisher) { p.now = now }
}

// NewPublisher creates a Publisher writing under baseDir.
func NewPublisher(baseDir string, opts ...Option) *Publisher {
	p := &Publisher{
		baseDir: baseDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish writes the document to disk and returns the path relative to the
// base directory.
func (p *Publisher) Publish(ctx context.Context, title, content string) (string, error) {
	now := p.now()

	relPath := clipmark.NoteFileName(title, now)
	if p.dateFolders {
		relPath = filepath.Join(now.Format("2006/01"), relPath)
	}

	fullPath := filepath.Join(p.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}

	return relPath, nil
}
