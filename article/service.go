// Package article composes fetching, extraction and summarization into the
// wikisum.ArticleService entry point.
package article

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/wikisum"
)

// Ensure Service implements wikisum.ArticleService at compile time.
var _ wikisum.ArticleService = (*Service)(nil)

// Service turns an article title into a Summary. Each call is independent;
// the Service itself holds only configuration.
type Service struct {
	Fetcher    wikisum.ArticleFetcher
	Extractor  wikisum.Extractor
	Summarizer wikisum.Summarizer

	// BaseURL is the wiki root used for canonical article links.
	BaseURL string

	// SentenceCount is the number of sentences per summary.
	SentenceCount int

	// Logger records why an article was reported as not found. Optional.
	Logger *slog.Logger
}

// NewService creates a Service with the default wiki and sentence count.
func NewService(fetcher wikisum.ArticleFetcher, extractor wikisum.Extractor, summarizer wikisum.Summarizer) *Service {
	return &Service{
		Fetcher:       fetcher,
		Extractor:     extractor,
		Summarizer:    summarizer,
		BaseURL:       wikisum.DefaultBaseURL,
		SentenceCount: wikisum.DefaultSentenceCount,
	}
}

// Summarize fetches, cleans and summarizes the article titled title.
func (s *Service) Summarize(ctx context.Context, title string) (*wikisum.Summary, error) {
	text, err := s.Extract(ctx, title)
	if err != nil {
		return nil, err
	}

	count := s.SentenceCount
	if count <= 0 {
		count = wikisum.DefaultSentenceCount
	}

	return &wikisum.Summary{
		Summary: s.Summarizer.Summarize(text, count),
		Title:   title,
		URL:     wikisum.ArticleURL(s.BaseURL, title),
	}, nil
}

// Extract fetches the article titled title and returns its clean text.
// Fetch and extraction failures are logged and reported as ENOTFOUND.
func (s *Service) Extract(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", wikisum.Errorf(wikisum.EINVALID, wikisum.MsgTitleRequired)
	}

	article, err := s.Fetcher.FetchArticle(ctx, title)
	if err != nil {
		s.notFound(title, "fetch", err)
		return "", wikisum.Errorf(wikisum.ENOTFOUND, wikisum.MsgArticleNotFound)
	}

	text, err := s.Extractor.Extract(article.HTML)
	if err != nil {
		s.notFound(title, "extract", err)
		return "", wikisum.Errorf(wikisum.ENOTFOUND, wikisum.MsgArticleNotFound)
	}
	if strings.TrimSpace(text) == "" {
		s.notFound(title, "extract", wikisum.Errorf(wikisum.ENOTFOUND, "empty content"))
		return "", wikisum.Errorf(wikisum.ENOTFOUND, wikisum.MsgArticleNotFound)
	}

	return text, nil
}

func (s *Service) notFound(title, stage string, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info("article not found",
		"title", title,
		"stage", stage,
		"err", err,
	)
}
