package obsidian_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/obsidian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("writes the note with bearer auth and markdown content type", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotAuth, gotContentType, gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusNoContent)
		}))
		t.Cleanup(srv.Close)

		pub := obsidian.NewPublisher(srv.URL, "secret", obsidian.WithNow(fixedNow))
		path, err := pub.Publish(context.Background(), "An Article", "# Body")

		require.NoError(t, err)
		assert.Equal(t, "Clippings/20240601_1200_An Article.md", path)
		assert.Equal(t, "/vault/Clippings/20240601_1200_An%20Article.md", gotPath)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "text/markdown", gotContentType)
		assert.Equal(t, "# Body", gotBody)
	})

	t.Run("groups notes under date folders when enabled", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		t.Cleanup(srv.Close)

		pub := obsidian.NewPublisher(srv.URL, "secret",
			obsidian.WithNow(fixedNow),
			obsidian.WithDateFolders(true),
		)
		path, err := pub.Publish(context.Background(), "An Article", "body")

		require.NoError(t, err)
		assert.Equal(t, "Clippings/2024/06/20240601_1200_An Article.md", path)
	})

	t.Run("strips unsafe characters from the title", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		t.Cleanup(srv.Close)

		pub := obsidian.NewPublisher(srv.URL, "secret", obsidian.WithNow(fixedNow))
		path, err := pub.Publish(context.Background(), `Q: what/is <it>? | "notes"`, "body")

		require.NoError(t, err)
		assert.Equal(t, "Clippings/20240601_1200_Q whatis it notes.md", path)
	})

	t.Run("does not retry an HTTP error status", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)

		pub := obsidian.NewPublisher(srv.URL, "wrong",
			obsidian.WithNow(fixedNow),
			obsidian.WithRetryDelays([]time.Duration{time.Millisecond}),
		)
		_, err := pub.Publish(context.Background(), "An Article", "body")

		require.Error(t, err)
		assert.Equal(t, clipmark.EUNAVAILABLE, clipmark.ErrorCode(err))
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("retries network errors with backoff", func(t *testing.T) {
		t.Parallel()

		// A server that is immediately closed produces connection errors.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		pub := obsidian.NewPublisher(srv.URL, "secret",
			obsidian.WithNow(fixedNow),
			obsidian.WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}),
		)
		_, err := pub.Publish(context.Background(), "An Article", "body")

		require.Error(t, err)
		assert.Equal(t, clipmark.EINTERNAL, clipmark.ErrorCode(err))
	})
}
