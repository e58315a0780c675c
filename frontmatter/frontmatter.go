// Package frontmatter renders the YAML metadata block prepended to
// published documents.
package frontmatter

import (
	"strings"

	"github.com/mwalczak/clipmark"
	"gopkg.in/yaml.v3"
)

// Render serializes the front matter as a fenced YAML block followed by a
// blank line, ready to prepend to the document body.
func Render(fm *clipmark.FrontMatter) (string, error) {
	out, err := yaml.Marshal(fm)
	if err != nil {
		return "", clipmark.Errorf(clipmark.EINTERNAL, "front matter encoding failed: %v", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(out)
	sb.WriteString("---\n\n")
	return sb.String(), nil
}

// Compose renders the front matter and prepends it to the Markdown body.
func Compose(fm *clipmark.FrontMatter, body string) (string, error) {
	block, err := Render(fm)
	if err != nil {
		return "", err
	}
	return block + body, nil
}
