package sqlite_test

import (
	"context"
	"testing"

	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.ClipStore {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	return sqlite.NewClipStore(db)
}

func TestClipStore_CreateClip(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		clip := &clipmark.Clip{
			SourceURL: "https://example.com/a",
			Title:     "An Article",
			Content:   "# An Article\n\nBody.",
		}

		err := store.CreateClip(context.Background(), clip)

		require.NoError(t, err)
		assert.NotEmpty(t, clip.ID)
		assert.NotEmpty(t, clip.ContentHash)
		assert.False(t, clip.CreatedAt.IsZero())
	})

	t.Run("rejects a clip without a source URL", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		clip := &clipmark.Clip{Title: "An Article"}

		err := store.CreateClip(context.Background(), clip)

		require.Error(t, err)
		assert.Equal(t, clipmark.EINVALID, clipmark.ErrorCode(err))
	})

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		a := &clipmark.Clip{SourceURL: "https://example.com/a", Title: "A", Content: "same"}
		b := &clipmark.Clip{SourceURL: "https://example.com/b", Title: "B", Content: "same"}

		require.NoError(t, store.CreateClip(context.Background(), a))
		require.NoError(t, store.CreateClip(context.Background(), b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestClipStore_FindClipByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a saved clip", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		clip := &clipmark.Clip{
			SourceURL: "https://example.com/a",
			Title:     "An Article",
			Content:   "Body.",
			NotePath:  "Clippings/20240601_1200_An Article.md",
		}
		require.NoError(t, store.CreateClip(context.Background(), clip))

		got, err := store.FindClipByID(context.Background(), clip.ID)

		require.NoError(t, err)
		assert.Equal(t, clip.SourceURL, got.SourceURL)
		assert.Equal(t, clip.Title, got.Title)
		assert.Equal(t, clip.Content, got.Content)
		assert.Equal(t, clip.NotePath, got.NotePath)
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)

		_, err := store.FindClipByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, clipmark.ENOTFOUND, clipmark.ErrorCode(err))
	})
}

func TestClipStore_FindClips(t *testing.T) {
	t.Parallel()

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		ctx := context.Background()
		require.NoError(t, store.CreateClip(ctx, &clipmark.Clip{SourceURL: "https://example.com/a", Title: "A"}))
		require.NoError(t, store.CreateClip(ctx, &clipmark.Clip{SourceURL: "https://example.com/b", Title: "B"}))

		sourceURL := "https://example.com/a"
		clips, err := store.FindClips(ctx, clipmark.ClipFilter{SourceURL: &sourceURL})

		require.NoError(t, err)
		require.Len(t, clips, 1)
		assert.Equal(t, "A", clips[0].Title)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		ctx := context.Background()
		for _, title := range []string{"A", "B", "C"} {
			require.NoError(t, store.CreateClip(ctx, &clipmark.Clip{SourceURL: "https://example.com/" + title, Title: title}))
		}

		clips, err := store.FindClips(ctx, clipmark.ClipFilter{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, clips, 2)
	})
}

func TestClipStore_DeleteClip(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing clip", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		ctx := context.Background()
		clip := &clipmark.Clip{SourceURL: "https://example.com/a", Title: "A"}
		require.NoError(t, store.CreateClip(ctx, clip))

		require.NoError(t, store.DeleteClip(ctx, clip.ID))

		_, err := store.FindClipByID(ctx, clip.ID)
		assert.Equal(t, clipmark.ENOTFOUND, clipmark.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)

		err := store.DeleteClip(context.Background(), "missing")

		assert.Equal(t, clipmark.ENOTFOUND, clipmark.ErrorCode(err))
	})
}
