package mock

import (
	"context"

	"github.com/fwojciec/wikisum"
)

var _ wikisum.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of wikisum.ArticleService.
type ArticleService struct {
	SummarizeFn func(ctx context.Context, title string) (*wikisum.Summary, error)
	ExtractFn   func(ctx context.Context, title string) (string, error)
}

func (s *ArticleService) Summarize(ctx context.Context, title string) (*wikisum.Summary, error) {
	return s.SummarizeFn(ctx, title)
}

func (s *ArticleService) Extract(ctx context.Context, title string) (string, error) {
	return s.ExtractFn(ctx, title)
}
