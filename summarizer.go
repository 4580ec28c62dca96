package wikisum

// Summarizer produces an extractive summary of clean article text.
type Summarizer interface {
	// Summarize selects up to count salient sentences from text and joins
	// them with single spaces. It never fails: when ranking is not
	// possible it degrades to a truncated prefix of text.
	Summarize(text string, count int) string
}

// SentenceTokenizer splits text into sentences.
type SentenceTokenizer interface {
	// Tokenize returns the sentences of text in document order.
	Tokenize(text string) ([]string, error)
}

// SentenceRanker selects the most salient sentences of a document.
type SentenceRanker interface {
	// Rank returns the indexes of the top n sentences, in ascending
	// (document) order. If there are fewer than n sentences all indexes
	// are returned.
	Rank(sentences []string, n int) ([]int, error)
}
