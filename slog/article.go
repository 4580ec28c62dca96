package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikisum"
)

// Ensure LoggingArticleService implements wikisum.ArticleService.
var _ wikisum.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with logging.
type LoggingArticleService struct {
	next   wikisum.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next wikisum.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// Summarize delegates to the wrapped service and logs the outcome.
func (s *LoggingArticleService) Summarize(ctx context.Context, title string) (summary *wikisum.Summary, err error) {
	defer func(begin time.Time) {
		var chars int
		if summary != nil {
			chars = len([]rune(summary.Summary))
		}
		s.logger.Info("summarize",
			"title", title,
			"chars", chars,
			"code", wikisum.ErrorCode(err),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Summarize(ctx, title)
}

// Extract delegates to the wrapped service and logs the outcome.
func (s *LoggingArticleService) Extract(ctx context.Context, title string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract",
			"title", title,
			"chars", len([]rune(text)),
			"code", wikisum.ErrorCode(err),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Extract(ctx, title)
}
