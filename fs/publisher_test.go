package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwalczak/clipmark/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("writes the note and returns its relative path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		pub := fs.NewPublisher(dir, fs.WithNow(fixedNow))

		path, err := pub.Publish(context.Background(), "An Article", "# Body")

		require.NoError(t, err)
		assert.Equal(t, "20240601_1200_An Article.md", path)

		content, err := os.ReadFile(filepath.Join(dir, path))
		require.NoError(t, err)
		assert.Equal(t, "# Body", string(content))
	})

	t.Run("groups notes under date folders when enabled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		pub := fs.NewPublisher(dir, fs.WithNow(fixedNow), fs.WithDateFolders(true))

		path, err := pub.Publish(context.Background(), "An Article", "body")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("2024", "06", "20240601_1200_An Article.md"), path)
		assert.FileExists(t, filepath.Join(dir, path))
	})

	t.Run("strips unsafe characters from the title", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		pub := fs.NewPublisher(dir, fs.WithNow(fixedNow))

		path, err := pub.Publish(context.Background(), `a/b: c?`, "body")

		require.NoError(t, err)
		assert.Equal(t, "20240601_1200_ab c.md", path)
	})
}
