// Package http provides an HTTP client for the MediaWiki parse API,
// implementing wikisum.ArticleFetcher.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/wikisum"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to the wiki.
const DefaultUserAgent = "JustapediaChatbot/1.0 (contact@example.com)"

// DefaultMaxResponseBytes caps the size of a parse API response body.
const DefaultMaxResponseBytes = 8 << 20

// Ensure Fetcher implements wikisum.ArticleFetcher at compile time.
var _ wikisum.ArticleFetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered article HTML from a MediaWiki parse API.
// Each call makes exactly one request; wrap it in a RetryFetcher to retry.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
	maxBytes  int64
	limiter   wikisum.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the wiki root, e.g. "https://justapedia.org".
// The API endpoint is <base>/api.php.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxResponseBytes caps the response body size. Zero disables the cap.
func WithMaxResponseBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithLimiter rate limits requests per wiki host.
func WithLimiter(l wikisum.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new parse API Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:   wikisum.DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// parseResponse is the subset of the action=parse JSON payload we read.
type parseResponse struct {
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
	Parse *struct {
		Title string `json:"title"`
		Text  struct {
			HTML *string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// FetchArticle requests the rendered HTML of the article titled title.
func (f *Fetcher) FetchArticle(ctx context.Context, title string) (*wikisum.Article, error) {
	endpoint, err := url.Parse(f.baseURL + "/api.php")
	if err != nil {
		return nil, wikisum.Errorf(wikisum.EINVALID, "invalid wiki URL: %v", err)
	}
	endpoint.RawQuery = url.Values{
		"action":    {"parse"},
		"page":      {title},
		"format":    {"json"},
		"prop":      {"text"},
		"redirects": {"1"},
	}.Encode()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, endpoint.Host); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, URL: endpoint.Redacted()}
	}

	body, err := f.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload parseResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode parse response: %w", err)
	}
	if payload.Error != nil {
		return nil, wikisum.Errorf(wikisum.ENOTFOUND, "parse %q: %s: %s", title, payload.Error.Code, payload.Error.Info)
	}
	if payload.Parse == nil || payload.Parse.Text.HTML == nil {
		return nil, wikisum.Errorf(wikisum.ENOTFOUND, "parse %q: response has no article text", title)
	}

	return &wikisum.Article{
		Title: payload.Parse.Title,
		HTML:  *payload.Parse.Text.HTML,
	}, nil
}

// StatusError reports a non-200 response from the wiki.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

func (f *Fetcher) readBody(r io.Reader) ([]byte, error) {
	if f.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", f.maxBytes)
	}
	return body, nil
}
