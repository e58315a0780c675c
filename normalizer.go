package clipmark

// Strategy identifies how article content was extracted from a page.
type Strategy string

// Extraction strategies, in the order they are attempted. Selection is
// deterministic and total: exactly one strategy applies to any document.
const (
	// StrategyTruncation cuts the document at a platform sentinel
	// marker, preserving the full original tag structure.
	StrategyTruncation Strategy = "truncation"

	// StrategyJSDecode recovers the article body from a JavaScript
	// variable holding an escaped HTML payload.
	StrategyJSDecode Strategy = "jsdecode"

	// StrategyPassthrough returns the raw HTML unchanged.
	StrategyPassthrough Strategy = "passthrough"
)

// Normalizer resolves which extraction strategy applies to raw article HTML
// and produces a single cleaner HTML string. It is a total function: it
// always returns content and a strategy, never an error.
type Normalizer interface {
	Normalize(html string) (content string, strategy Strategy)
}
