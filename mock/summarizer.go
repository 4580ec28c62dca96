package mock

import "github.com/fwojciec/wikisum"

var _ wikisum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of wikisum.Summarizer.
type Summarizer struct {
	SummarizeFn func(text string, count int) string
}

func (s *Summarizer) Summarize(text string, count int) string {
	return s.SummarizeFn(text, count)
}

var _ wikisum.SentenceTokenizer = (*SentenceTokenizer)(nil)

// SentenceTokenizer is a mock implementation of wikisum.SentenceTokenizer.
type SentenceTokenizer struct {
	TokenizeFn func(text string) ([]string, error)
}

func (t *SentenceTokenizer) Tokenize(text string) ([]string, error) {
	return t.TokenizeFn(text)
}

var _ wikisum.SentenceRanker = (*SentenceRanker)(nil)

// SentenceRanker is a mock implementation of wikisum.SentenceRanker.
type SentenceRanker struct {
	RankFn func(sentences []string, n int) ([]int, error)
}

func (r *SentenceRanker) Rank(sentences []string, n int) ([]int, error) {
	return r.RankFn(sentences, n)
}
