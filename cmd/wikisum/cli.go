package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikisum"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Articles  wikisum.ArticleService
	Fetcher   wikisum.ArticleFetcher
	Cleaner   HTMLCleaner
	Converter wikisum.Converter
}

// HTMLCleaner strips boilerplate from article HTML while keeping markup.
type HTMLCleaner interface {
	CleanHTML(rawHTML string) (string, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	WikiURL   string        `name:"wiki-url" env:"WIKISUM_WIKI_URL" default:"https://justapedia.org" help:"Wiki root URL"`
	UserAgent string        `name:"user-agent" env:"WIKISUM_USER_AGENT" help:"User-Agent sent to the wiki"`
	Timeout   time.Duration `env:"WIKISUM_TIMEOUT" default:"10s" help:"Wiki request timeout"`
	Sentences int           `env:"WIKISUM_SENTENCES" default:"6" help:"Sentences per summary"`
	Rate      float64       `env:"WIKISUM_RATE" default:"0" help:"Wiki requests per second per host (0 disables)"`
	Retries   int           `env:"WIKISUM_RETRIES" default:"0" help:"Retries for transient wiki failures"`
	MaxBytes  int64         `name:"max-bytes" env:"WIKISUM_MAX_BYTES" default:"8388608" help:"Maximum wiki response size in bytes"`
	LogLevel  string        `name:"log-level" env:"WIKISUM_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string        `name:"log-format" env:"WIKISUM_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format"`

	Serve     ServeCmd     `cmd:"" help:"Serve the summarize endpoint over HTTP"`
	Summarize SummarizeCmd `cmd:"" help:"Print the summary of an article as JSON"`
	Extract   ExtractCmd   `cmd:"" help:"Print the clean text of an article"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"WIKISUM_ADDR" default:":8080" help:"Listen address"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Title string `arg:"" help:"Article title"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Title    string `arg:"" help:"Article title"`
	Markdown bool   `short:"m" help:"Print cleaned article HTML as Markdown"`
}
