package main

import (
	"fmt"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := novelgrab.ChapterFilter{}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	chapters, err := deps.Chapters.FindChapters(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", novelgrab.ErrorMessage(err))
		return err
	}
	if len(chapters) == 0 {
		fmt.Fprintln(deps.Stdout, "No chapters to export.")
		return nil
	}

	writer := fs.NewWriter(c.Dir)
	for _, ch := range chapters {
		path, err := writer.WriteChapter(ch)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\n", path)
	}

	return nil
}
