package main

import (
	"fmt"

	"github.com/novelgrab/novelgrab"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Chapters.DeleteChapter(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", novelgrab.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "deleted chapter %s\n", c.ID)
	return nil
}
