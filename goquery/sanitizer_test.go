package goquery_test

import (
	"testing"

	"github.com/mwalczak/clipmark/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes non-content elements", func(t *testing.T) {
		t.Parallel()

		html := `<p>keep</p><script>var x;</script><style>p{}</style>` +
			`<noscript>no</noscript><iframe src="http://e"></iframe>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, "keep")
		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "style")
		assert.NotContains(t, out, "iframe")
	})

	t.Run("removes spans without visible text", func(t *testing.T) {
		t.Parallel()

		html := `<p><span>  </span><span>visible</span></p>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, "<span>visible</span>")
		assert.NotContains(t, out, "<span>  </span>")
	})

	t.Run("replaces script-pseudo anchors with their text", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="javascript:void(0)">click me</a></p>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, "click me")
		assert.NotContains(t, out, "<a")
	})

	t.Run("drops anchors with no href and no text", func(t *testing.T) {
		t.Parallel()

		html := `<p>before<a></a>after</p>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.NotContains(t, out, "<a")
		assert.Contains(t, out, "before")
		assert.Contains(t, out, "after")
	})

	t.Run("keeps valid anchors untouched", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="https://example.com/x">link</a></p>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, `<a href="https://example.com/x">link</a>`)
	})

	t.Run("preserves sections containing links headings or images", func(t *testing.T) {
		t.Parallel()

		html := `<section><h2>Part</h2><p>text</p></section>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, "<h2>Part</h2>")
	})

	t.Run("flattens plain sections to their text", func(t *testing.T) {
		t.Parallel()

		html := `<section><div><b>just</b> text</div></section>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.NotContains(t, out, "<b>")
		assert.Contains(t, out, "just")
		assert.Contains(t, out, "text")
	})

	t.Run("flattened sections prefer nested span text", func(t *testing.T) {
		t.Parallel()

		html := `<section><span>span text</span></section>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, "span text")
	})

	t.Run("separates headings from adjacent siblings", func(t *testing.T) {
		t.Parallel()

		html := `<p>before</p><h2>Title</h2><p>after</p>`

		out, err := goquery.Sanitize(html)

		require.NoError(t, err)
		assert.Contains(t, out, "\n\n<h2>Title</h2>")
		assert.Contains(t, out, "</h2>\n\n")
	})
}
