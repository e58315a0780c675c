package goquery_test

import (
	"testing"

	"github.com/mwalczak/clipmark/goquery"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title", func(t *testing.T) {
		t.Parallel()

		html := `<head><meta property="og:title" content="OG Title"><title>Doc Title</title></head>` +
			`<body><h1>Heading</h1></body>`

		assert.Equal(t, "OG Title", goquery.Title(html))
	})

	t.Run("falls back to title element", func(t *testing.T) {
		t.Parallel()

		html := `<head><title> Doc Title </title></head><body><h1>Heading</h1></body>`

		assert.Equal(t, "Doc Title", goquery.Title(html))
	})

	t.Run("falls back to first h1", func(t *testing.T) {
		t.Parallel()

		html := `<body><h1>Heading</h1><h1>Second</h1></body>`

		assert.Equal(t, "Heading", goquery.Title(html))
	})

	t.Run("returns empty when nothing applies", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.Title("<body><p>text</p></body>"))
	})
}
