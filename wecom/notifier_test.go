package wecom_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/wecom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier(t *testing.T) {
	t.Parallel()

	t.Run("posts a text message on success", func(t *testing.T) {
		t.Parallel()

		var payload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		}))
		t.Cleanup(srv.Close)

		n := wecom.NewNotifier(srv.URL)
		err := n.ClipSucceeded(context.Background(), "An Article", "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "text", payload["msgtype"])
		content := payload["text"].(map[string]any)["content"].(string)
		assert.Contains(t, content, "An Article")
		assert.Contains(t, content, "https://example.com/a")
	})

	t.Run("includes the cause in failure messages", func(t *testing.T) {
		t.Parallel()

		var payload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			fmt.Fprint(w, `{"errcode":0,"errmsg":"ok"}`)
		}))
		t.Cleanup(srv.Close)

		n := wecom.NewNotifier(srv.URL)
		err := n.ClipFailed(context.Background(), "https://example.com/a",
			clipmark.Errorf(clipmark.EUNAVAILABLE, "HTTP 503 for https://example.com/a"))

		require.NoError(t, err)
		content := payload["text"].(map[string]any)["content"].(string)
		assert.Contains(t, content, "https://example.com/a")
		assert.Contains(t, content, "HTTP 503")
	})

	t.Run("reports an API-level error code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"errcode":93000,"errmsg":"invalid webhook url"}`)
		}))
		t.Cleanup(srv.Close)

		n := wecom.NewNotifier(srv.URL)
		err := n.ClipFailed(context.Background(), "https://example.com/a", errors.New("boom"))

		require.Error(t, err)
		assert.Equal(t, clipmark.EUNAVAILABLE, clipmark.ErrorCode(err))
	})

	t.Run("reports transport failures", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		n := wecom.NewNotifier(srv.URL)
		err := n.ClipSucceeded(context.Background(), "An Article", "https://example.com/a")

		require.Error(t, err)
	})
}
