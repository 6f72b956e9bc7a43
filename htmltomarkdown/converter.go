// Package htmltomarkdown converts extracted chapter HTML to plain
// markdown text for the engine-based extraction path.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/novelgrab/novelgrab"
)

// Ensure Converter implements novelgrab.Converter at compile time.
var _ novelgrab.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to turn chapter HTML into text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into markdown text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", novelgrab.Errorf(novelgrab.EEXTRACT, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", novelgrab.Errorf(novelgrab.EEXTRACT, "markdown conversion: %v", err)
	}

	return result, nil
}
