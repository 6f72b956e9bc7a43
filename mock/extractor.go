package mock

import "github.com/novelgrab/novelgrab"

var _ novelgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of novelgrab.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*novelgrab.Extraction, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*novelgrab.Extraction, error) {
	return e.ExtractFn(html, pageURL)
}

var _ novelgrab.HTMLExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor is a mock implementation of novelgrab.HTMLExtractor.
type HTMLExtractor struct {
	ExtractHTMLFn func(html string) (*novelgrab.HTMLResult, error)
}

func (e *HTMLExtractor) ExtractHTML(html string) (*novelgrab.HTMLResult, error) {
	return e.ExtractHTMLFn(html)
}

var _ novelgrab.Converter = (*Converter)(nil)

// Converter is a mock implementation of novelgrab.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
