package clipmark

import (
	"regexp"
	"strings"
)

// RewriteURLs replaces every occurrence of an original image URL in the
// Markdown with its re-hosted URL. For each mapping pair it rewrites, in
// order: image syntax with alt text, image syntax with empty alt text, and
// finally any remaining bare occurrence of the URL. Rewriting is
// idempotent, and mapping order does not matter because URL sets do not
// overlap.
func RewriteURLs(markdown string, mapping URLMapping) string {
	for oldURL, newURL := range mapping {
		if oldURL == newURL {
			continue
		}
		quoted := regexp.QuoteMeta(oldURL)

		withAlt := regexp.MustCompile(`!\[(.+?)\]\(` + quoted + `\)`)
		markdown = withAlt.ReplaceAllString(markdown, `![$1](`+newURL+`)`)

		emptyAlt := regexp.MustCompile(`!\[\]\(` + quoted + `\)`)
		markdown = emptyAlt.ReplaceAllString(markdown, `![](`+newURL+`)`)

		markdown = strings.ReplaceAll(markdown, oldURL, newURL)
	}
	return markdown
}
