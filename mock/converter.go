package mock

import "github.com/fwojciec/wikisum"

var _ wikisum.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikisum.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
