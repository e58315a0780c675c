package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	clipecho "github.com/mwalczak/clipmark/echo"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := deps.Config.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	server := clipecho.NewServer(deps.Clipper, deps.Clips)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	fmt.Fprintf(deps.Stdout, "clipmark listening on %s\n", addr)

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
