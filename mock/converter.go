package mock

import "github.com/mwalczak/clipmark"

var _ clipmark.Converter = (*Converter)(nil)

// Converter is a mock implementation of clipmark.Converter.
type Converter struct {
	ConvertFn func(html string) (*clipmark.Conversion, error)
}

func (c *Converter) Convert(html string) (*clipmark.Conversion, error) {
	return c.ConvertFn(html)
}
