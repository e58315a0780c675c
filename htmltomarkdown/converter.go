// Package htmltomarkdown converts article HTML to Markdown. It composes the
// platform normalizer, image discovery, the DOM sanitizer and the
// html-to-markdown renderer into a single clipmark.Converter.
package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/mwalczak/clipmark"
	gq "github.com/mwalczak/clipmark/goquery"
	"github.com/mwalczak/clipmark/wechat"
)

// Ensure Converter implements clipmark.Converter at compile time.
var _ clipmark.Converter = (*Converter)(nil)

// Converter renders article HTML as Markdown. The commonmark defaults match
// the house rule set: ATX headings, hyphen bullets, asterisk emphasis,
// backtick code marks, --- rules, inline [text](url) links.
type Converter struct {
	normalizer clipmark.Normalizer
	conv       *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{
		normalizer: wechat.NewNormalizer(),
		conv:       conv,
	}
}

// Convert normalizes, sanitizes and renders the HTML, returning the
// Markdown and the merged image list.
func (c *Converter) Convert(rawHTML string) (*clipmark.Conversion, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clipmark.Errorf(clipmark.EINVALID, "empty HTML input")
	}

	// The structured picture list lives in page scripts, which
	// normalization may discard; read it from the input first.
	pictures := wechat.ExtractPictures(rawHTML)

	normalized, strategy := c.normalizer.Normalize(rawHTML)

	tagged, err := gq.ExtractImages(normalized)
	if err != nil {
		return nil, err
	}
	images := clipmark.MergeImages(pictures, tagged)

	sanitized, err := gq.Sanitize(normalized)
	if err != nil {
		return nil, err
	}

	markdown, err := c.conv.ConvertString(sanitized)
	if err != nil {
		return nil, clipmark.Errorf(clipmark.EINTERNAL, "markdown conversion failed: %v", err)
	}

	markdown = collapseNewlines(markdown)
	markdown = breakAfterLinks(markdown)

	// The JS-variable content path cannot carry images inline; recover
	// them by prepending one image block per structured reference.
	if strategy == clipmark.StrategyJSDecode && len(pictures) > 0 && !strings.Contains(markdown, "![") {
		blocks := make([]string, len(pictures))
		for i, img := range pictures {
			blocks[i] = fmt.Sprintf("![图片%d](%s)", i+1, img.URL)
		}
		markdown = strings.Join(blocks, "\n\n") + "\n\n" + markdown
	}

	return &clipmark.Conversion{
		Markdown:        markdown,
		Images:          images,
		Strategy:        strategy,
		StructuredCount: len(pictures),
		TaggedCount:     len(tagged),
	}, nil
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// collapseNewlines reduces any run of three or more newlines to exactly two.
func collapseNewlines(markdown string) string {
	return excessNewlines.ReplaceAllString(markdown, "\n\n")
}

var inlineLink = regexp.MustCompile(`\[[^\]\n]*\]\([^)\n]*\)`)

// breakAfterLinks forces a second newline after every inline link that is
// immediately followed by a single newline, so link-only lines render as
// separate blocks.
func breakAfterLinks(markdown string) string {
	matches := inlineLink.FindAllStringIndex(markdown, -1)
	if matches == nil {
		return markdown
	}

	var sb strings.Builder
	sb.Grow(len(markdown) + len(matches))
	prev := 0
	for _, m := range matches {
		end := m[1]
		sb.WriteString(markdown[prev:end])
		if end < len(markdown) && markdown[end] == '\n' &&
			(end+1 == len(markdown) || markdown[end+1] != '\n') {
			sb.WriteByte('\n')
		}
		prev = end
	}
	sb.WriteString(markdown[prev:])
	return sb.String()
}
