package main

import (
	"encoding/json"
	"fmt"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	chapter, meta, err := deps.Scraper.Scrape(deps.Ctx, c.URL)

	if c.JSON {
		resp := scrape.NewResponse(chapter, meta, err)
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(resp); encErr != nil {
			return encErr
		}
		if err != nil {
			return err
		}
	} else {
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", novelgrab.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\n\n%s\n", chapter.Title, chapter.Content)
	}

	if c.Save {
		if err := deps.Chapters.CreateChapter(deps.Ctx, chapter); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "saved chapter %s\n", chapter.ID)
	}

	return nil
}
