package novelgrab

import (
	"context"
	"time"
)

// Chapter is the extracted document returned by a successful scrape.
type Chapter struct {
	ID          string    `json:"id,omitempty"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	WordCount   int       `json:"wordCount"`
	ContentHash string    `json:"contentHash,omitempty"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "chapter URL required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chapter content required")
	}
	return nil
}

// Meta carries per-scrape diagnostics alongside a Chapter.
type Meta struct {
	Encoding       string        `json:"encoding"`
	EncodingSource string        `json:"encodingSource"`
	ProcessingTime time.Duration `json:"processingTime"`
}

// Scraper runs the full retrieval and extraction pipeline for one URL.
// Each invocation is stateless; concurrent calls for different URLs are
// independent.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*Chapter, *Meta, error)
}

// ChapterService persists scraped chapters to an archive.
type ChapterService interface {
	// CreateChapter stores a chapter, assigning ID and content hash.
	CreateChapter(ctx context.Context, chapter *Chapter) error

	// FindChapterByURL retrieves the most recently stored chapter for a URL.
	// Returns ENOTFOUND if no chapter exists.
	FindChapterByURL(ctx context.Context, url string) (*Chapter, error)

	// FindChapters retrieves chapters matching the filter, newest first.
	FindChapters(ctx context.Context, filter ChapterFilter) ([]*Chapter, error)

	// DeleteChapter permanently removes a chapter.
	// Returns ENOTFOUND if the chapter does not exist.
	DeleteChapter(ctx context.Context, id string) error
}

// ChapterFilter represents a filter for FindChapters.
type ChapterFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
