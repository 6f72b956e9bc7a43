package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/scrape"
	"github.com/novelgrab/novelgrab/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Chapters novelgrab.ChapterService
	Scraper  novelgrab.Scraper
	Pipeline *scrape.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool          `short:"v" help:"Log pipeline steps to stderr"`
	Timeout  time.Duration `default:"15s" help:"Per-request fetch timeout"`
	Attempts int           `default:"3" help:"Fetch attempts before giving up"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape one chapter from a URL"`
	Crawl  CrawlCmd  `cmd:"" help:"Follow next-chapter links from a URL"`
	List   ListCmd   `cmd:"" help:"List archived chapters"`
	Show   ShowCmd   `cmd:"" help:"Print an archived chapter"`
	Export ExportCmd `cmd:"" help:"Export archived chapters as text files"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived chapter"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL    string `arg:"" help:"Chapter URL"`
	Engine string `short:"e" default:"selector" help:"Extraction engine: selector, readability, or trafilatura"`
	Save   bool   `short:"s" help:"Store the chapter in the archive"`
	JSON   bool   `short:"j" help:"Print the full JSON envelope"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string  `arg:"" help:"First chapter URL"`
	Engine      string  `short:"e" default:"selector" help:"Extraction engine: selector, readability, or trafilatura"`
	MaxChapters int     `short:"n" default:"500" help:"Stop after this many chapters"`
	RPS         float64 `default:"0.5" help:"Requests per second to the source site"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only chapters scraped from this URL"`
	Limit int    `default:"20" help:"Maximum chapters to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Chapter ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory"`
	URL string `help:"Only chapters scraped from this URL"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Chapter ID"`
}
