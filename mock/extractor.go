package mock

import "github.com/fwojciec/wikisum"

var _ wikisum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikisum.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
