package novelgrab

// Extraction holds the narrative text extracted from an HTML page.
type Extraction struct {
	// Title is the chapter title from the title-strategy cascade.
	Title string

	// Content is the cleaned narrative text. Reader chrome (navigation,
	// reading controls, ads) has been stripped.
	Content string

	// Strategy names the cascade stage that produced the content.
	Strategy string
}

// Candidate is a provisional extraction from one heuristic strategy,
// subject to scoring and acceptance. Candidates are transient and never
// persisted.
type Candidate struct {
	Strategy string
	Text     string
	Length   int
}

// Extractor extracts narrative text from decoded HTML.
// The page URL selects site-specific selector packs where available.
type Extractor interface {
	Extract(html string, pageURL string) (*Extraction, error)
}

// HTMLResult holds the output of an HTML-preserving extraction engine.
type HTMLResult struct {
	Title       string
	ContentHTML string
}

// HTMLExtractor extracts main content as clean HTML, boilerplate
// removed. Used by alternative engines whose output needs a Converter
// pass before validation.
type HTMLExtractor interface {
	ExtractHTML(html string) (*HTMLResult, error)
}
