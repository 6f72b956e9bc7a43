package scrape

import (
	"github.com/novelgrab/novelgrab"
)

// Ensure EngineExtractor implements novelgrab.Extractor at compile time.
var _ novelgrab.Extractor = (*EngineExtractor)(nil)

// EngineExtractor adapts an HTML-preserving extraction engine plus a
// converter into the plain-text Extractor contract. The converted text
// goes through the same cleanup cascade as selector extraction so the
// validator sees comparable input regardless of engine.
type EngineExtractor struct {
	name      string
	engine    novelgrab.HTMLExtractor
	converter novelgrab.Converter
}

// NewEngineExtractor creates an adapter around an alternative engine.
// The name labels the extraction strategy in results.
func NewEngineExtractor(name string, engine novelgrab.HTMLExtractor, converter novelgrab.Converter) *EngineExtractor {
	return &EngineExtractor{name: name, engine: engine, converter: converter}
}

// Extract runs the engine and converts its HTML output to cleaned text.
func (e *EngineExtractor) Extract(html string, pageURL string) (*novelgrab.Extraction, error) {
	result, err := e.engine.ExtractHTML(html)
	if err != nil {
		return nil, novelgrab.Errorf(novelgrab.EEXTRACT, "%s engine failed: %v", e.name, err)
	}

	text, err := e.converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, novelgrab.Errorf(novelgrab.EEXTRACT, "%s conversion failed: %v", e.name, err)
	}

	return &novelgrab.Extraction{
		Title:    result.Title,
		Content:  novelgrab.CollapseWhitespace(novelgrab.CleanText(text)),
		Strategy: "engine:" + e.name,
	}, nil
}
