package main

import (
	"fmt"
	"net"

	wikigin "github.com/fwojciec/wikisum/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", c.Addr, err)
	}

	deps.Logger.Info("listening", "addr", ln.Addr().String())

	return wikigin.NewServer(deps.Articles, deps.Logger).Run(deps.Ctx, ln)
}
