// Package summary implements wikisum.Summarizer by tokenizing clean text into
// sentences, ranking them, and filtering the selection.
package summary

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/wikisum"
)

// FallbackLength is the number of characters kept when summarization
// degrades to truncation.
const FallbackLength = 600

// Ensure Summarizer implements wikisum.Summarizer at compile time.
var _ wikisum.Summarizer = (*Summarizer)(nil)

// Summarizer selects salient sentences with a SentenceRanker. It holds no
// per-call state and is safe for concurrent use when its collaborators are.
type Summarizer struct {
	Tokenizer wikisum.SentenceTokenizer
	Ranker    wikisum.SentenceRanker

	// Logger receives a warning whenever a summary degrades to truncation.
	// Optional.
	Logger *slog.Logger
}

// NewSummarizer creates a Summarizer.
func NewSummarizer(tokenizer wikisum.SentenceTokenizer, ranker wikisum.SentenceRanker) *Summarizer {
	return &Summarizer{Tokenizer: tokenizer, Ranker: ranker}
}

// Summarize returns up to count ranked sentences of text, in document order,
// joined by single spaces. If the text cannot be ranked, or nothing survives
// filtering, it returns Truncate(text) instead.
func (s *Summarizer) Summarize(text string, count int) (summary string) {
	defer func() {
		if r := recover(); r != nil {
			s.degraded(text, fmt.Errorf("panic: %v", r))
			summary = Truncate(text)
		}
	}()

	summary, err := s.summarize(text, count)
	if err != nil {
		s.degraded(text, err)
		return Truncate(text)
	}
	return summary
}

func (s *Summarizer) summarize(text string, count int) (string, error) {
	sentences, err := s.Tokenizer.Tokenize(text)
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}
	if len(sentences) == 0 {
		return "", fmt.Errorf("tokenize: no sentences")
	}

	selected, err := s.Ranker.Rank(sentences, count)
	if err != nil {
		return "", fmt.Errorf("rank: %w", err)
	}

	parts := make([]string, 0, len(selected))
	for _, i := range selected {
		if i < 0 || i >= len(sentences) {
			return "", fmt.Errorf("rank: index %d out of range", i)
		}
		if sentence, ok := wikisum.CleanSentence(sentences[i]); ok {
			parts = append(parts, sentence)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("filter: no sentences left")
	}
	return strings.Join(parts, " "), nil
}

func (s *Summarizer) degraded(text string, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.Warn("summary degraded to truncation",
		"chars", len([]rune(text)),
		"err", err,
	)
}

// Truncate returns the first FallbackLength characters of text followed by
// an ellipsis marker.
func Truncate(text string) string {
	if len(text) > FallbackLength {
		if r := []rune(text); len(r) > FallbackLength {
			text = string(r[:FallbackLength])
		}
	}
	return text + "..."
}
