package clipmark

// FrontMatter holds the fields rendered into the YAML block prepended to a
// published document.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Source      string `yaml:"source"`
	Date        string `yaml:"date,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Description string `yaml:"description,omitempty"`

	Category        string   `yaml:"category,omitempty"`
	NewTitle        string   `yaml:"new_title,omitempty"`
	Paragraphs      []string `yaml:"paragraphs,omitempty"`
	GoldenSentences []string `yaml:"golden_sentences,omitempty"`
}

// ApplySummary copies summarizer output into the front matter.
func (fm *FrontMatter) ApplySummary(s *Summary) {
	if s == nil {
		return
	}
	fm.Category = s.Category
	fm.NewTitle = s.NewTitle
	fm.Paragraphs = s.Paragraphs
	fm.GoldenSentences = s.GoldenSentences
}
