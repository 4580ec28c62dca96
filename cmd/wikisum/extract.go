package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wikisum"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if !c.Markdown {
		text, err := deps.Articles.Extract(deps.Ctx, c.Title)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikisum.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	md, err := c.markdown(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikisum.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, strings.TrimSpace(md))
	return nil
}

func (c *ExtractCmd) markdown(deps *Dependencies) (string, error) {
	if strings.TrimSpace(c.Title) == "" {
		return "", wikisum.Errorf(wikisum.EINVALID, wikisum.MsgTitleRequired)
	}

	article, err := deps.Fetcher.FetchArticle(deps.Ctx, c.Title)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", c.Title, err)
	}

	cleaned, err := deps.Cleaner.CleanHTML(article.HTML)
	if err != nil {
		return "", fmt.Errorf("clean %q: %w", c.Title, err)
	}

	return deps.Converter.Convert(cleaned)
}
