package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/wikisum"
	main "github.com/fwojciec/wikisum/cmd/wikisum"
	"github.com/fwojciec/wikisum/goquery"
	"github.com/fwojciec/wikisum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints clean text", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			ExtractFn: func(_ context.Context, title string) (string, error) {
				assert.Equal(t, "Earth", title)
				return "Earth is the third planet.", nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		err := (&main.ExtractCmd{Title: "Earth"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Earth is the third planet.\n", stdout.String())
	})

	t.Run("reports extraction errors on stderr", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			ExtractFn: func(_ context.Context, _ string) (string, error) {
				return "", wikisum.Errorf(wikisum.ENOTFOUND, wikisum.MsgArticleNotFound)
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Articles: articles,
		}

		err := (&main.ExtractCmd{Title: "Nowhere"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Article not found or empty")
	})

	t.Run("markdown view converts cleaned HTML", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ArticleFetcher{
			FetchArticleFn: func(_ context.Context, title string) (*wikisum.Article, error) {
				return &wikisum.Article{
					Title: title,
					HTML:  `<div class="mw-parser-output"><div class="hatnote">For other uses, see Earth (disambiguation).</div><p>Earth is the third planet.</p></div>`,
				}, nil
			},
		}
		var converted string
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				converted = html
				return "Earth is the third planet.\n\n", nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Fetcher:   fetcher,
			Cleaner:   goquery.NewExtractor(),
			Converter: converter,
		}

		err := (&main.ExtractCmd{Title: "Earth", Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Earth is the third planet.\n", stdout.String())
		assert.Contains(t, converted, "Earth is the third planet.")
		assert.NotContains(t, converted, "disambiguation")
	})

	t.Run("markdown view rejects blank title", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		err := (&main.ExtractCmd{Title: " ", Markdown: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, wikisum.EINVALID, wikisum.ErrorCode(err))
	})

	t.Run("markdown view wraps fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ArticleFetcher{
			FetchArticleFn: func(_ context.Context, _ string) (*wikisum.Article, error) {
				return nil, errors.New("connection refused")
			},
		}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Fetcher: fetcher,
		}

		err := (&main.ExtractCmd{Title: "Earth", Markdown: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
