// Package goquery provides DOM-based HTML processing for clipmark: content
// sanitization, tag-based image discovery, and title extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalczak/clipmark"
	"golang.org/x/net/html"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// Sanitize strips non-content elements and repairs block-level layout so
// the Markdown renderer produces separate blocks for sections and headings.
// The rules operate on a parsed DOM, so nested elements are visited exactly
// once.
func Sanitize(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", clipmark.Errorf(clipmark.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, meta, link, noscript, iframe").Remove()

	doc.Find("span").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			s.Remove()
		}
	})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		text := strings.TrimSpace(s.Text())

		if href == "" || strings.Contains(href, "javascript:") {
			if text != "" {
				s.ReplaceWithHtml(html.EscapeString(text))
			} else {
				s.Remove()
			}
		}
	})

	doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		if s.Find("a, img").Length() > 0 || s.Find(headingSelector).Length() > 0 {
			// Structure worth keeping; just guarantee a block break after.
			s.AppendNodes(textNode("\n\n"))
			return
		}

		// Flatten to text, preferring a nested span's text when present.
		text := s.Text()
		if span := s.Find("span").First(); span.Length() > 0 {
			text = span.Text()
		}
		if strings.TrimSpace(text) == "" {
			return
		}
		s.SetText(text + "\n\n")
	})

	doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		if s.Prev().Length() > 0 {
			s.BeforeNodes(textNode("\n\n"))
		}
		if s.Next().Length() > 0 {
			s.AfterNodes(textNode("\n\n"))
		}
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", clipmark.Errorf(clipmark.EINTERNAL, "failed to render sanitized HTML: %v", err)
	}
	return out, nil
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
