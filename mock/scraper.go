package mock

import (
	"context"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of novelgrab.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*novelgrab.Chapter, *novelgrab.Meta, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*novelgrab.Chapter, *novelgrab.Meta, error) {
	return s.ScrapeFn(ctx, url)
}

var _ novelgrab.ChapterService = (*ChapterService)(nil)

// ChapterService is a mock implementation of novelgrab.ChapterService.
type ChapterService struct {
	CreateChapterFn    func(ctx context.Context, chapter *novelgrab.Chapter) error
	FindChapterByURLFn func(ctx context.Context, url string) (*novelgrab.Chapter, error)
	FindChaptersFn     func(ctx context.Context, filter novelgrab.ChapterFilter) ([]*novelgrab.Chapter, error)
	DeleteChapterFn    func(ctx context.Context, id string) error
}

func (s *ChapterService) CreateChapter(ctx context.Context, chapter *novelgrab.Chapter) error {
	return s.CreateChapterFn(ctx, chapter)
}

func (s *ChapterService) FindChapterByURL(ctx context.Context, url string) (*novelgrab.Chapter, error) {
	return s.FindChapterByURLFn(ctx, url)
}

func (s *ChapterService) FindChapters(ctx context.Context, filter novelgrab.ChapterFilter) ([]*novelgrab.Chapter, error) {
	return s.FindChaptersFn(ctx, filter)
}

func (s *ChapterService) DeleteChapter(ctx context.Context, id string) error {
	return s.DeleteChapterFn(ctx, id)
}
