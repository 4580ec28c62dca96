package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/article"
	"github.com/fwojciec/wikisum/goquery"
	"github.com/fwojciec/wikisum/htmltomarkdown"
	wikihttp "github.com/fwojciec/wikisum/http"
	"github.com/fwojciec/wikisum/lexrank"
	"github.com/fwojciec/wikisum/sentences"
	wikislog "github.com/fwojciec/wikisum/slog"
	"github.com/fwojciec/wikisum/summary"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the wiki client. Used for end-to-end testing.
	Fetcher wikisum.ArticleFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikisum"),
		kong.Description("Summarize wiki articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikisum --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.LogFormat)
	m.wire(cli, deps)

	return kongCtx.Run(deps)
}

// wire builds the article pipeline from the global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) {
	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []wikihttp.Option{
			wikihttp.WithBaseURL(cli.WikiURL),
			wikihttp.WithTimeout(cli.Timeout),
			wikihttp.WithMaxResponseBytes(cli.MaxBytes),
		}
		if cli.UserAgent != "" {
			opts = append(opts, wikihttp.WithUserAgent(cli.UserAgent))
		}
		if cli.Rate > 0 {
			opts = append(opts, wikihttp.WithLimiter(wikihttp.NewDomainLimiter(cli.Rate)))
		}
		fetcher = wikihttp.NewFetcher(opts...)
		if cli.Retries > 0 {
			fetcher = wikihttp.NewRetryFetcher(fetcher, wikihttp.RetryDelays(cli.Retries), deps.Logger)
		}
	}
	fetcher = wikislog.NewLoggingFetcher(fetcher, deps.Logger)

	extractor := goquery.NewExtractor()

	summarizer := summary.NewSummarizer(sentences.NewTokenizer(), lexrank.NewRanker())
	summarizer.Logger = deps.Logger

	svc := article.NewService(fetcher, extractor, summarizer)
	svc.BaseURL = cli.WikiURL
	svc.SentenceCount = cli.Sentences
	svc.Logger = deps.Logger

	deps.Fetcher = fetcher
	deps.Cleaner = extractor
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Articles = wikislog.NewLoggingArticleService(svc, deps.Logger)
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
