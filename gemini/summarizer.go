// Package gemini implements article summarization using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwalczak/clipmark"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for summarization.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements clipmark.Summarizer at compile time.
var _ clipmark.Summarizer = (*Summarizer)(nil)

// Summarizer implements clipmark.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize produces a structured summary of the article.
func (s *Summarizer) Summarize(ctx context.Context, title, markdown string) (*clipmark.Summary, error) {
	if title == "" {
		return nil, clipmark.Errorf(clipmark.EINVALID, "title required")
	}
	if strings.TrimSpace(markdown) == "" {
		return nil, clipmark.Errorf(clipmark.EINVALID, "article content required")
	}

	prompt := BuildUserPrompt(title, markdown)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, clipmark.Errorf(clipmark.EINTERNAL, "gemini returned nil result")
	}

	return ParseSummary(result.Text())
}

// BuildConfig returns the GenerateContentConfig for summarization calls.
// JSON response mode keeps the output machine-parseable.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an editor producing structured notes for a personal knowledge base. " +
					"Respond with a single JSON object with the keys: " +
					`"category" (one or two words), "new_title" (a clearer title), ` +
					`"paragraphs" (3-5 short summary paragraphs) and ` +
					`"golden_sentences" (the most quotable sentences, verbatim). ` +
					"Write in the language of the article.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the article.
func BuildUserPrompt(title, markdown string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	fmt.Fprintf(&sb, "<content>%s</content>\n", markdown)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Summarize this article.")
	return sb.String()
}

// ParseSummary decodes the model's JSON output, tolerating a Markdown code
// fence around it.
func ParseSummary(text string) (*clipmark.Summary, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var summary clipmark.Summary
	if err := json.Unmarshal([]byte(text), &summary); err != nil {
		return nil, clipmark.Errorf(clipmark.EINTERNAL, "malformed summary response: %v", err)
	}
	return &summary, nil
}
