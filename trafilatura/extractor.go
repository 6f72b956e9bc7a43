// Package trafilatura provides the trafilatura extraction engine, an
// alternative to selector-based extraction with stronger boilerplate
// removal for cluttered pages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/novelgrab/novelgrab"
	"golang.org/x/net/html"
)

// Ensure Extractor implements novelgrab.HTMLExtractor at compile time.
var _ novelgrab.HTMLExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main content of a page.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, novelgrab.Errorf(novelgrab.EEXTRACT, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &novelgrab.HTMLResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
