package clipmark

// Conversion is the result of converting article HTML to Markdown.
type Conversion struct {
	// Markdown is the rendered document before image URL rewriting.
	Markdown string

	// Images is the ordered, deduplicated list of image references
	// discovered during conversion.
	Images []ImageRef

	// Strategy is the extraction strategy that produced the content.
	Strategy Strategy

	// StructuredCount and TaggedCount record how many references each
	// discovery source contributed before merging, for diagnostics.
	StructuredCount int
	TaggedCount     int
}

// Converter converts article HTML to Markdown and discovers images.
type Converter interface {
	// Convert normalizes, sanitizes and renders the HTML. The input is
	// the cleaned HTML from a Fetcher. A rendering failure is fatal to
	// the clip.
	Convert(html string) (*Conversion, error)
}
