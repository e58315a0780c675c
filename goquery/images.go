package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalczak/clipmark"
)

// ExtractImages walks all img elements in the HTML and returns their
// references in document order. The src attribute is preferred; data-src
// (lazy loading) is the fallback when src is absent or empty. Duplicates
// are kept: deduplication happens when sources are merged.
func ExtractImages(rawHTML string) ([]clipmark.ImageRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, clipmark.Errorf(clipmark.EINVALID, "failed to parse HTML: %v", err)
	}

	var images []clipmark.ImageRef
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			src, _ = s.Attr("data-src")
		}
		if src == "" {
			return
		}
		alt, _ := s.Attr("alt")
		images = append(images, clipmark.ImageRef{URL: src, Alt: alt})
	})
	return images, nil
}
