package clipmark

import (
	"context"
	"time"
)

// Clip represents a single clipped article: the final Markdown document and
// the metadata that describes where it came from.
type Clip struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	NotePath    string    `json:"notePath"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the clip contains invalid fields.
func (c *Clip) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "clip source URL required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "clip title required")
	}
	return nil
}

// Clipper runs the full clip operation for a single URL and returns the
// resulting clip. Implementations own fetching, conversion, image
// re-hosting, and publication; partial image failures are invisible to the
// caller except as unmodified image links in the final document.
type Clipper interface {
	Clip(ctx context.Context, url string) (*Clip, error)
}

// ClipStore persists clips.
type ClipStore interface {
	// CreateClip saves a new clip, assigning its ID, hash and timestamp.
	CreateClip(ctx context.Context, clip *Clip) error

	// FindClipByID retrieves a clip by ID.
	// Returns ENOTFOUND if the clip does not exist.
	FindClipByID(ctx context.Context, id string) (*Clip, error)

	// FindClips retrieves clips matching the filter, newest first.
	FindClips(ctx context.Context, filter ClipFilter) ([]*Clip, error)

	// DeleteClip permanently removes a clip.
	// Returns ENOTFOUND if the clip does not exist.
	DeleteClip(ctx context.Context, id string) error
}

// ClipFilter represents a filter for FindClips.
type ClipFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
