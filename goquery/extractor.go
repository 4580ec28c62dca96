package goquery

import (
	"strings"

	"github.com/fwojciec/wikisum"
)

// Ensure Extractor implements wikisum.Extractor at compile time.
var _ wikisum.Extractor = (*Extractor)(nil)

// Extractor strips MediaWiki boilerplate from rendered article HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the clean text lines of rawHTML joined by newlines.
// Returns ENOTFOUND if every line was filtered out.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := e.strip(rawHTML)
	if err != nil {
		return "", err
	}

	text := wikisum.CleanLines(doc.Text())
	if text == "" {
		return "", wikisum.Errorf(wikisum.ENOTFOUND, "no content left after cleanup")
	}
	return text, nil
}

// CleanHTML returns rawHTML with boilerplate elements removed, for rendering
// the article in other formats.
func (e *Extractor) CleanHTML(rawHTML string) (string, error) {
	doc, err := e.strip(rawHTML)
	if err != nil {
		return "", err
	}
	return doc.HTML()
}

func (e *Extractor) strip(rawHTML string) (*Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wikisum.Errorf(wikisum.EINVALID, "empty HTML input")
	}

	doc, err := NewDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	wikisum.StripBoilerplate(doc)
	return doc, nil
}
