package main

import (
	"encoding/json"

	"github.com/fwojciec/wikisum"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")

	summary, err := deps.Articles.Summarize(deps.Ctx, c.Title)
	if err != nil {
		_ = enc.Encode(map[string]string{"error": wikisum.ErrorMessage(err)})
		return err
	}

	return enc.Encode(summary)
}
