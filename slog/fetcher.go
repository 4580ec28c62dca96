// Package slog provides log/slog decorators for wikisum services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikisum"
)

// Ensure LoggingFetcher implements wikisum.ArticleFetcher.
var _ wikisum.ArticleFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an ArticleFetcher with debug logging.
type LoggingFetcher struct {
	next   wikisum.ArticleFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikisum.ArticleFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchArticle logs the title being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) FetchArticle(ctx context.Context, title string) (article *wikisum.Article, err error) {
	defer func(begin time.Time) {
		var resolved string
		var size int
		if article != nil {
			resolved, size = article.Title, len(article.HTML)
		}
		f.logger.Debug("fetch article",
			"title", title,
			"resolved", resolved,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchArticle(ctx, title)
}
