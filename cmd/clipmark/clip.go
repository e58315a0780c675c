package main

import (
	"fmt"

	"github.com/mwalczak/clipmark"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	clip, err := deps.Clipper.Clip(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Clipped %q\n", clip.Title)
	if clip.NotePath != "" {
		fmt.Fprintf(deps.Stdout, "Saved to %s\n", clip.NotePath)
	}

	return nil
}
