package main

import (
	"fmt"

	"github.com/novelgrab/novelgrab"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := novelgrab.ChapterFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	chapters, err := deps.Chapters.FindChapters(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", novelgrab.ErrorMessage(err))
		return err
	}

	if len(chapters) == 0 {
		fmt.Fprintln(deps.Stdout, "No chapters archived. Use 'novelgrab scrape --save' to store one.")
		return nil
	}

	for _, ch := range chapters {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d words  %s\n", ch.ID, ch.ExtractedAt.Format("2006-01-02"), ch.WordCount, ch.Title)
	}

	return nil
}
