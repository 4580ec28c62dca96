package wikisum

import (
	"context"
	"strings"
)

// DefaultBaseURL is the wiki that articles are fetched from and linked to.
const DefaultBaseURL = "https://justapedia.org"

// DefaultSentenceCount is the number of sentences selected for a summary.
const DefaultSentenceCount = 6

// Article is the rendered body of a wiki article as returned by the parse API.
type Article struct {
	// Title is the title reported by the API after redirect resolution.
	Title string

	// HTML is the rendered article body. It only lives for one request.
	HTML string
}

// Summary is the result returned to callers of the summarize endpoint.
type Summary struct {
	Summary string `json:"summary"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// ArticleService produces summaries for wiki articles.
type ArticleService interface {
	// Summarize fetches the article with the given title and summarizes it.
	// Returns EINVALID if the title is blank and ENOTFOUND if the article
	// could not be fetched or had no content left after cleanup.
	Summarize(ctx context.Context, title string) (*Summary, error)

	// Extract fetches the article and returns its clean text.
	// Errors follow the same codes as Summarize.
	Extract(ctx context.Context, title string) (string, error)
}

// ArticleURL returns the canonical link for title on the wiki at baseURL.
// Spaces become underscores and everything outside the unreserved set
// (and '/') is percent-encoded.
func ArticleURL(baseURL, title string) string {
	return strings.TrimRight(baseURL, "/") + "/wiki/" + quotePath(strings.ReplaceAll(title, " ", "_"))
}

func quotePath(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
