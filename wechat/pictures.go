package wechat

import (
	"regexp"
	"strings"

	"github.com/mwalczak/clipmark"
)

var (
	// pictureListPattern bounds the JS array literal assigned to
	// picture_page_info_list by its trailing .slice call.
	pictureListPattern = regexp.MustCompile(`(?s)picture_page_info_list\s*=\s*(\[.*?\])\s*\.slice`)

	// mainURLPattern matches the first cdn_url in each picture object.
	// Objects carry further cdn_urls for watermark and share-cover
	// variants later on; the non-greedy [^}]*? stops at the first.
	mainURLPattern = regexp.MustCompile(`\{\s*width:[^}]*?cdn_url:\s*'([^']+)'`)
)

// urlEscapes decode the escape sequences WeChat leaves in picture URLs.
// \x26amp; must decode before \x26.
var urlEscapes = [...][2]string{
	{`\x26amp;`, "&"},
	{`\x26`, "&"},
	{`\x22`, `"`},
}

// ExtractPictures returns the main article images declared in the page's
// structured picture list, in document order, deduplicated by URL. Alt text
// is always empty for this source. Pages without a picture list return nil.
func ExtractPictures(html string) []clipmark.ImageRef {
	m := pictureListPattern.FindStringSubmatch(html)
	if m == nil {
		return nil
	}

	matches := mainURLPattern.FindAllStringSubmatch(m[1], -1)
	seen := make(map[string]bool, len(matches))
	var images []clipmark.ImageRef
	for _, um := range matches {
		url := um[1]
		for _, esc := range urlEscapes {
			url = strings.ReplaceAll(url, esc[0], esc[1])
		}
		if seen[url] {
			continue
		}
		seen[url] = true
		images = append(images, clipmark.ImageRef{URL: url})
	}
	return images
}

var publishTimePattern = regexp.MustCompile(`var publish_time = "([^"]+)"`)

// PublishTime returns the publish date WeChat stores in a JS variable, or
// the empty string if absent.
func PublishTime(html string) string {
	m := publishTimePattern.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return m[1]
}
