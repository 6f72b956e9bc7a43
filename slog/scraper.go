package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/novelgrab/novelgrab"
)

// Ensure LoggingScraper implements novelgrab.Scraper.
var _ novelgrab.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with per-chapter logging.
type LoggingScraper struct {
	next   novelgrab.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next novelgrab.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (chapter *novelgrab.Chapter, meta *novelgrab.Meta, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if chapter != nil {
			attrs = append(attrs, "title", chapter.Title, "words", chapter.WordCount)
		}
		if meta != nil {
			attrs = append(attrs, "encoding", meta.Encoding, "encodingSource", meta.EncodingSource)
		}
		if err != nil {
			attrs = append(attrs, "code", novelgrab.ErrorCode(err), "err", err)
			s.logger.Error("scrape", attrs...)
			return
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
