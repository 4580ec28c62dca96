package wikisum

import "context"

// ArticleFetcher retrieves rendered article HTML from a wiki.
type ArticleFetcher interface {
	// FetchArticle requests the parsed article body for title.
	// Redirects are resolved by the remote API.
	// The context controls timeout and cancellation.
	FetchArticle(ctx context.Context, title string) (*Article, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
