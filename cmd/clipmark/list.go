package main

import (
	"fmt"

	"github.com/mwalczak/clipmark"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	clips, err := deps.Clips.FindClips(deps.Ctx, clipmark.ClipFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipmark.ErrorMessage(err))
		return err
	}

	if len(clips) == 0 {
		fmt.Fprintln(deps.Stdout, "No clips found. Use 'clipmark clip <url>' to create one.")
		return nil
	}

	for _, clip := range clips {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", clip.CreatedAt.Format("2006-01-02 15:04"), clip.Title, clip.SourceURL)
	}

	return nil
}
