package main

import (
	"fmt"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	walker := &crawl.Walker{
		Pages:       deps.Pipeline,
		Chapters:    deps.Chapters,
		Limiter:     crawl.NewHostLimiter(c.RPS),
		MaxChapters: c.MaxChapters,
		Progress: func(ev crawl.ProgressEvent) {
			switch ev.Type {
			case crawl.ProgressScraped:
				fmt.Fprintf(deps.Stderr, "[%d] %s\n", ev.Completed, ev.URL)
			case crawl.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "[%d] %s failed: %s\n", ev.Completed, ev.URL, novelgrab.ErrorMessage(ev.Error))
			}
		},
	}

	result, err := walker.Walk(deps.Ctx, c.URL)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "scraped %d chapters, saved %d, failed %d\n",
			result.Scraped, result.Saved, result.Failed)
	}
	return err
}
