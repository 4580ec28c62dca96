package mock

import (
	"context"

	"github.com/fwojciec/wikisum"
)

var _ wikisum.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher is a mock implementation of wikisum.ArticleFetcher.
type ArticleFetcher struct {
	FetchArticleFn func(ctx context.Context, title string) (*wikisum.Article, error)
}

func (f *ArticleFetcher) FetchArticle(ctx context.Context, title string) (*wikisum.Article, error) {
	return f.FetchArticleFn(ctx, title)
}

var _ wikisum.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of wikisum.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
