package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/charset"
	"github.com/novelgrab/novelgrab/goquery"
	"github.com/novelgrab/novelgrab/htmltomarkdown"
	novelhttp "github.com/novelgrab/novelgrab/http"
	"github.com/novelgrab/novelgrab/readability"
	"github.com/novelgrab/novelgrab/scrape"
	novelslog "github.com/novelgrab/novelgrab/slog"
	"github.com/novelgrab/novelgrab/sqlite"
	"github.com/novelgrab/novelgrab/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding the chapter archive.
	DB *sqlite.DB

	// ChapterService for end-to-end testing.
	ChapterService novelgrab.ChapterService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("novelgrab"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'novelgrab --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NOVELGRAB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ChapterService = sqlite.NewChapterService(m.DB)
	deps.DB = m.DB
	deps.Chapters = m.ChapterService

	engine := ""
	switch cmd {
	case "scrape":
		engine = cli.Scrape.Engine
	case "crawl":
		engine = cli.Crawl.Engine
	}
	if engine != "" {
		pipeline, err := newPipeline(engine, deps.Logger,
			novelhttp.WithTimeout(cli.Timeout),
			novelhttp.WithMaxAttempts(cli.Attempts),
		)
		if err != nil {
			return err
		}
		deps.Pipeline = pipeline
		deps.Scraper = novelslog.NewLoggingScraper(pipeline, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the scrape pipeline for the requested extraction
// engine.
func newPipeline(engine string, logger *slog.Logger, fetchOpts ...novelhttp.Option) (*scrape.Pipeline, error) {
	var extractor novelgrab.Extractor
	switch engine {
	case "selector":
		extractor = goquery.NewExtractor()
	case "readability":
		extractor = scrape.NewEngineExtractor("readability", readability.NewExtractor(), htmltomarkdown.NewConverter())
	case "trafilatura":
		extractor = scrape.NewEngineExtractor("trafilatura", trafilatura.NewExtractor(), htmltomarkdown.NewConverter())
	default:
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "unknown engine %q (expected selector, readability, or trafilatura)", engine)
	}

	fetcher := novelslog.NewLoggingFetcher(novelhttp.NewFetcher(fetchOpts...), logger)
	return scrape.NewPipeline(fetcher, charset.NewDetector(), charset.NewDecoder(), extractor), nil
}

func defaultDBPath() string {
	if path := os.Getenv("NOVELGRAB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "novelgrab.db"
	}
	dir := filepath.Join(home, ".novelgrab")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "novelgrab.db")
}
