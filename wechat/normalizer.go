// Package wechat handles the WeChat public-account article format: content
// hidden behind a template sentinel, inside a JavaScript-escaped payload, or
// in a structured picture list embedded in page scripts.
package wechat

import (
	"regexp"
	"strings"

	"github.com/mwalczak/clipmark"
)

// Ensure Normalizer implements clipmark.Normalizer at compile time.
var _ clipmark.Normalizer = (*Normalizer)(nil)

// sentinel marks where real article content ends and template boilerplate
// begins in server-rendered WeChat pages. Owned by this package: if the
// platform's template changes, only this constant moves.
const sentinel = "预览时标签不可点"

var (
	jsContentPattern = regexp.MustCompile(`content_noencode:\s*JsDecode\('([^']+)'\)`)
	dataSrcPattern   = regexp.MustCompile(`data-src="([^"]*)"`)
)

// jsEscapes are the payload unescape steps, applied strictly in order.
// Later substitutions must not re-trigger earlier patterns, so do not
// reorder: in particular the ampersand entity decodes before the escaped
// slash, and the escaped backslash goes last.
var jsEscapes = [...][2]string{
	{`\x0a`, "\n"},
	{`\x3c`, "<"},
	{`\x3e`, ">"},
	{`\x22`, `"`},
	{`\x26amp;`, "&"},
	{`\x27`, "'"},
	{`\/`, "/"},
	{`\\`, `\`},
}

// Normalizer resolves which extraction strategy applies to a page. The
// strategies are tried in a fixed order and the first match wins; the final
// passthrough strategy always matches, so Normalize is total.
type Normalizer struct {
	strategies []strategyFunc
}

type strategyFunc struct {
	name  clipmark.Strategy
	apply func(html string) (string, bool)
}

// NewNormalizer creates a Normalizer with the standard strategy chain.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		strategies: []strategyFunc{
			{clipmark.StrategyTruncation, truncateAtSentinel},
			{clipmark.StrategyJSDecode, decodeJSVariable},
			{clipmark.StrategyPassthrough, passthrough},
		},
	}
}

// Normalize returns cleaner article HTML and the strategy that produced it.
func (n *Normalizer) Normalize(html string) (string, clipmark.Strategy) {
	for _, s := range n.strategies {
		if content, ok := s.apply(html); ok {
			return content, s.name
		}
	}
	// Unreachable: passthrough always matches.
	return html, clipmark.StrategyPassthrough
}

// truncateAtSentinel cuts the document at the first sentinel occurrence.
// Preferred because it keeps the full original tag structure, so images and
// links survive intact.
func truncateAtSentinel(html string) (string, bool) {
	cut := strings.Index(html, sentinel)
	if cut == -1 {
		return "", false
	}
	return strings.TrimSpace(html[:cut]), true
}

// decodeJSVariable recovers the article body from the content_noencode
// JavaScript variable and rebuilds paragraph structure around it.
func decodeJSVariable(html string) (string, bool) {
	m := jsContentPattern.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}

	content := m[1]
	for _, esc := range jsEscapes {
		content = strings.ReplaceAll(content, esc[0], esc[1])
	}

	var paragraphs []string
	for _, p := range strings.Split(content, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.Contains(p, "<a ") || strings.Contains(p, "<img ") {
			// Keep embedded markup verbatim.
			paragraphs = append(paragraphs, "<p>"+p+"</p>")
		} else {
			p = strings.ReplaceAll(p, "\n", "<br/>")
			paragraphs = append(paragraphs, "<p>"+p+"</p>")
		}
	}

	result := strings.Join(paragraphs, "\n")
	// Lazy-load attributes would hide images from the renderer.
	result = dataSrcPattern.ReplaceAllString(result, `src="$1"`)
	return result, true
}

func passthrough(html string) (string, bool) {
	return html, true
}
