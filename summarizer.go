package clipmark

import "context"

// Summary is the structured enrichment produced by the LLM summarizer.
type Summary struct {
	Category        string   `json:"category"`
	NewTitle        string   `json:"new_title"`
	Paragraphs      []string `json:"paragraphs"`
	GoldenSentences []string `json:"golden_sentences"`
}

// Summarizer produces a structured summary of a clipped article.
// Summarization is best-effort: callers treat a failure as a missing
// summary, never as a failed clip.
type Summarizer interface {
	Summarize(ctx context.Context, title, markdown string) (*Summary, error)
}
