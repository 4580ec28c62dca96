package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/wikisum"
)

// Ensure RetryFetcher implements wikisum.ArticleFetcher at compile time.
var _ wikisum.ArticleFetcher = (*RetryFetcher)(nil)

// RetryDelays returns n backoff delays starting at 250ms and doubling.
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	d := 250 * time.Millisecond
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// RetryFetcher retries transient fetch failures, meaning transport errors
// and 429 or 5xx responses. Anything else fails immediately.
type RetryFetcher struct {
	next   wikisum.ArticleFetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next with one retry per delay. A nil logger
// disables retry logging.
func NewRetryFetcher(next wikisum.ArticleFetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// FetchArticle calls the wrapped fetcher until it succeeds, fails
// permanently, or runs out of retries.
func (f *RetryFetcher) FetchArticle(ctx context.Context, title string) (*wikisum.Article, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		article, err := f.next.FetchArticle(ctx, title)
		if err == nil {
			return article, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !transient(ctx, err) {
			break
		}

		f.logger.Warn("retry fetch",
			"title", title,
			"attempt", attempt+2,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return nil, lastErr
}

func transient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError || statusErr.Code == http.StatusTooManyRequests
	}
	return false
}
