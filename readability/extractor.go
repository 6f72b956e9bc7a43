// Package readability provides the readability extraction engine, an
// alternative to selector-based extraction for pages whose structure no
// selector pack covers.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/novelgrab/novelgrab"
)

// Ensure Extractor implements novelgrab.HTMLExtractor at compile time.
var _ novelgrab.HTMLExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractHTML isolates the chapter body of a page, preserving markup.
func (e *Extractor) ExtractHTML(rawHTML string) (*novelgrab.HTMLResult, error) {
	if rawHTML == "" {
		return nil, novelgrab.Errorf(novelgrab.EEXTRACT, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, novelgrab.Errorf(novelgrab.EEXTRACT, "readability: %v", err)
	}

	return &novelgrab.HTMLResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
