package main

import (
	"fmt"

	"github.com/novelgrab/novelgrab"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	chapters, err := deps.Chapters.FindChapters(deps.Ctx, novelgrab.ChapterFilter{ID: &c.ID, Limit: 1})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", novelgrab.ErrorMessage(err))
		return err
	}
	if len(chapters) == 0 {
		return novelgrab.Errorf(novelgrab.ENOTFOUND, "chapter %q not found", c.ID)
	}

	ch := chapters[0]
	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n%s\n", ch.Title, ch.URL, ch.Content)
	return nil
}
