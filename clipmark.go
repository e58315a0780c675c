// Package clipmark provides a web-article clipping service. It fetches an
// article, converts it to portable Markdown, re-hosts the article's images,
// and publishes the result to a note store with YAML front matter.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, picgo/,
// htmltomarkdown/, sqlite/).
package clipmark
