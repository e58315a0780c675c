package clipmark

// ImageRef is a reference to an article image. Identity is URL; Alt is the
// alt text recorded when the reference was first seen.
type ImageRef struct {
	URL string
	Alt string
}

// URLMapping maps an original image URL to its re-hosted URL. A failed
// upload maps the URL to itself, so every processed image has an entry.
type URLMapping map[string]string

// MergeImages merges the structured picture-list references with the
// tag-derived references into a single ordered, deduplicated list.
// Structured entries come first in document order; later duplicates of an
// already-seen URL are skipped, so the first-seen alt text wins.
func MergeImages(structured, tagged []ImageRef) []ImageRef {
	seen := make(map[string]bool, len(structured)+len(tagged))
	merged := make([]ImageRef, 0, len(structured)+len(tagged))
	for _, img := range structured {
		if seen[img.URL] {
			continue
		}
		seen[img.URL] = true
		merged = append(merged, img)
	}
	for _, img := range tagged {
		if seen[img.URL] {
			continue
		}
		seen[img.URL] = true
		merged = append(merged, img)
	}
	return merged
}
