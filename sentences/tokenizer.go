// Package sentences implements wikisum.SentenceTokenizer with the punkt
// sentence boundary detector from github.com/neurosnap/sentences.
package sentences

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/wikisum"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Ensure Tokenizer implements wikisum.SentenceTokenizer at compile time.
var _ wikisum.SentenceTokenizer = (*Tokenizer)(nil)

type punkt interface {
	Tokenize(text string) []*sentences.Sentence
}

// loadEnglish decodes the bundled English training data once per process.
var loadEnglish = sync.OnceValues(func() (punkt, error) {
	return english.NewSentenceTokenizer(nil)
})

// Tokenizer splits English text into sentences. Each line of input is
// treated as its own paragraph, so sentences never span a line break.
type Tokenizer struct {
	load func() (punkt, error)
}

// NewTokenizer returns a Tokenizer backed by the shared English model.
// The model is loaded lazily on the first call to Tokenize.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{load: loadEnglish}
}

// Tokenize returns the trimmed, non-empty sentences of text in order.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	tok, err := t.load()
	if err != nil {
		return nil, fmt.Errorf("load english sentence model: %w", err)
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, s := range tok.Tokenize(line) {
			if str := strings.TrimSpace(s.Text); str != "" {
				out = append(out, str)
			}
		}
	}
	return out, nil
}
