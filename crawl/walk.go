// Package crawl walks chapter chains by following next-chapter links.
// Walks are deliberately sequential: chapter order matters and source
// sites tolerate little concurrent load.
package crawl

import (
	"context"
	"net/url"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/bloom"
	"github.com/novelgrab/novelgrab/goquery"
)

// Walk configuration defaults.
const (
	// DefaultMaxChapters limits a walk to prevent runaway chains.
	DefaultMaxChapters = 500
	// DefaultRPS is the per-host request rate during a walk.
	DefaultRPS = 0.5

	// visitedExpectedURLs sizes the visited filter.
	visitedExpectedURLs = 10000
	// visitedFalsePositiveRate is the acceptable early-stop rate.
	visitedFalsePositiveRate = 0.01
)

// PageScraper scrapes one chapter and exposes the decoded page HTML so
// the walker can discover the next-chapter link.
type PageScraper interface {
	ScrapeHTML(ctx context.Context, url string) (*novelgrab.Chapter, *novelgrab.Meta, string, error)
}

// NextFunc locates the next-chapter URL on a fetched page.
type NextFunc func(html string, pageURL string) (string, bool)

// ProgressType identifies a walk progress event.
type ProgressType int

// Walk progress event types.
const (
	ProgressScraped ProgressType = iota
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports walk progress to an optional callback.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	URL       string
	Error     error
}

// ProgressFunc receives progress events during a walk.
type ProgressFunc func(ProgressEvent)

// Result summarizes a completed walk.
type Result struct {
	Scraped int
	Saved   int
	Failed  int
}

// Walker follows next-chapter links from a starting URL, scraping each
// chapter in order.
type Walker struct {
	Scraper novelgrab.Scraper

	// Pages is consulted for link discovery. When the Scraper also
	// implements PageScraper this can be left nil.
	Pages PageScraper

	// Chapters, when set, persists each scraped chapter.
	Chapters novelgrab.ChapterService

	// Limiter spaces requests to a host. Defaults to DefaultRPS.
	Limiter *HostLimiter

	// NextURL locates the next-chapter link. Defaults to
	// goquery.NextChapterURL.
	NextURL NextFunc

	// MaxChapters caps the walk length. Defaults to DefaultMaxChapters.
	MaxChapters int

	// Progress, when set, receives an event per chapter.
	Progress ProgressFunc
}

// Walk follows the chapter chain from startURL until the chain ends,
// the chapter cap is reached, a page fails, or the context is canceled.
// A partial Result is returned alongside any error.
func (w *Walker) Walk(ctx context.Context, startURL string) (*Result, error) {
	pages := w.Pages
	if pages == nil {
		scraper, ok := w.Scraper.(PageScraper)
		if !ok {
			return nil, novelgrab.Errorf(novelgrab.EINTERNAL, "walker has no page scraper")
		}
		pages = scraper
	}

	limiter := w.Limiter
	if limiter == nil {
		limiter = NewHostLimiter(DefaultRPS)
	}
	nextURL := w.NextURL
	if nextURL == nil {
		nextURL = goquery.NextChapterURL
	}
	maxChapters := w.MaxChapters
	if maxChapters <= 0 {
		maxChapters = DefaultMaxChapters
	}

	visited := bloom.NewVisited(visitedExpectedURLs, visitedFalsePositiveRate)
	result := &Result{}
	current := startURL

	defer func() {
		if w.Progress != nil {
			w.Progress(ProgressEvent{Type: ProgressFinished, Completed: result.Scraped})
		}
	}()

	for current != "" && result.Scraped+result.Failed < maxChapters {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if visited.Seen(current) {
			break
		}
		visited.Mark(current)

		parsed, err := url.Parse(current)
		if err != nil {
			return result, novelgrab.Errorf(novelgrab.EINVALID, "invalid chapter URL %q: %v", current, err)
		}
		if err := limiter.Wait(ctx, parsed.Host); err != nil {
			return result, err
		}

		chapter, _, html, err := pages.ScrapeHTML(ctx, current)
		if err != nil {
			result.Failed++
			if w.Progress != nil {
				w.Progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: result.Scraped,
					URL:       current,
					Error:     err,
				})
			}
			return result, err
		}

		result.Scraped++
		if w.Chapters != nil {
			if err := w.Chapters.CreateChapter(ctx, chapter); err != nil {
				return result, err
			}
			result.Saved++
		}
		if w.Progress != nil {
			w.Progress(ProgressEvent{
				Type:      ProgressScraped,
				Completed: result.Scraped,
				URL:       current,
			})
		}

		next, ok := nextURL(html, current)
		if !ok {
			break
		}
		current = next
	}

	return result, nil
}
