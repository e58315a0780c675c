package clipmark

import (
	"context"
	"strings"
	"time"
)

// Publisher saves a finished document to the user's note store.
type Publisher interface {
	// Publish writes the document (front matter included) under a path
	// derived from the title and returns that path.
	Publish(ctx context.Context, title, content string) (path string, err error)
}

// Notifier sends outbound progress notifications. Notification failures
// are logged by callers and never propagate into the clip result.
type Notifier interface {
	ClipSucceeded(ctx context.Context, title, url string) error
	ClipFailed(ctx context.Context, url string, cause error) error
}

// filenameUnsafe matches characters note stores and filesystems reject.
const filenameUnsafe = `/\:*?"<>|#^[]`

// NoteFileName derives the note filename from the title and timestamp:
// "20240601_1200_An Article.md". Unsafe characters are stripped and
// whitespace collapsed so every publisher names notes the same way.
func NoteFileName(title string, now time.Time) string {
	var sb strings.Builder
	for _, r := range title {
		if strings.ContainsRune(filenameUnsafe, r) {
			continue
		}
		sb.WriteRune(r)
	}
	cleaned := strings.Join(strings.Fields(sb.String()), " ")
	if cleaned == "" {
		cleaned = "Untitled"
	}
	return now.Format("20060102_1504") + "_" + cleaned + ".md"
}
