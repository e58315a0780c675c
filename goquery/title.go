package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Title resolves the article title using a fallback chain: the og:title
// meta tag, the document title element, then the first h1. Returns the
// empty string when none apply.
func Title(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && content != "" {
		return content
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
