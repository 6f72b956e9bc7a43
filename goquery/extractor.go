// Package goquery provides the CSS-selector implementation of
// novelgrab.Extractor: a title-strategy cascade and a multi-stage
// content-candidate cascade tuned for web-fiction reader markup.
package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/novelgrab/novelgrab"
	"golang.org/x/net/html"
)

// TitlePlaceholder is returned when every title strategy fails.
const TitlePlaceholder = "未知章节"

// genericTitleSelectors are site conventions tried after the document
// title and first h1.
var genericTitleSelectors = []string{
	".book-name",
	".bookname",
	".booktitle",
	".chapter-title",
	".chaptertitle",
	"#chaptertitle",
	".chapter_title",
	"h1.title",
}

// genericContainers are common content wrappers for the best-effort stage.
var genericContainers = []string{
	"#content",
	".content",
	"article",
	"main",
	".article-content",
	".post-content",
}

// rankedSelectors is the exhaustive list scored by cleaned-text length.
// Convention selectors come before broad containers so equal scores
// resolve to the more specific match.
var rankedSelectors = []string{
	"#content",
	"#chaptercontent",
	"#chapter_content",
	"#booktext",
	"#htmlContent",
	"#txt",
	".content",
	".chapter-content",
	".chapter_content",
	".read-content",
	".readcontent",
	".showtxt",
	".novel-content",
	".novel_content",
	".text",
	".txt",
	".novel",
	".story",
	"div[id*=content]",
	"div[class*=content]",
	"div[class*=chapter]",
	"div[class*=read]",
	"div[class*=text]",
	"div[class*=novel]",
	"div[class*=story]",
	"article",
	"main",
	"section",
}

// fragmentExclusions mark nav/ad containers whose descendants the
// paragraph-aggregation stage skips.
const fragmentExclusions = "nav, header, footer, aside, .nav, .menu, .ad, .ads, [class*=banner]"

// Config holds the empirically tuned stage thresholds. The values have
// no stated derivation; they are configuration, not logic.
type Config struct {
	// MinSpecialized is the acceptance floor for the specialized-site
	// selector scan (cleaned chars).
	MinSpecialized int

	// MinChapterRaw is the minimum raw chapter-pattern match length.
	MinChapterRaw int

	// MinChapterClean is the post-cleanup floor for chapter-pattern
	// extraction.
	MinChapterClean int

	// MinGeneric is the acceptance floor for the generic-container stage.
	MinGeneric int

	// MinRanked is the score floor for the exhaustive selector ranking.
	MinRanked int

	// MinFragment is the minimum fragment length for paragraph
	// aggregation.
	MinFragment int

	// MaxFragments bounds the number of aggregated fragments.
	MaxFragments int
}

// DefaultConfig returns the tuned production thresholds.
func DefaultConfig() Config {
	return Config{
		MinSpecialized:  500,
		MinChapterRaw:   1000,
		MinChapterClean: 800,
		MinGeneric:      200,
		MinRanked:       50,
		MinFragment:     10,
		MaxFragments:    200,
	}
}

// Ensure Extractor implements novelgrab.Extractor at compile time.
var _ novelgrab.Extractor = (*Extractor)(nil)

// Extractor extracts narrative text using CSS selectors and the fixed
// cleanup cascade. The zero-dependency alternative engines live in
// readability/ and trafilatura/.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an Extractor with the default thresholds.
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an Extractor with custom thresholds.
func NewExtractorWithConfig(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract runs the title cascade and the content cascade. Stages run in
// declared order and the first stage satisfying its predicate wins, so
// extraction is deterministic for a given document.
func (e *Extractor) Extract(htmlStr string, pageURL string) (*novelgrab.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	site := novelgrab.SiteForURL(pageURL)
	title := e.extractTitle(doc, site)

	var candidate *novelgrab.Candidate
	if site != nil {
		candidate = e.specializedScan(doc, site)
	}
	if candidate == nil {
		candidate = e.chapterPattern(doc)
	}
	if candidate == nil {
		candidate = e.genericContainer(doc)
	}
	if candidate == nil {
		candidate = e.rankedScan(doc)
	}
	if candidate == nil {
		candidate = e.paragraphFallback(doc)
	}
	if candidate == nil {
		return nil, novelgrab.Errorf(novelgrab.EEXTRACT, "no extraction strategy produced content")
	}

	return &novelgrab.Extraction{
		Title:    title,
		Content:  novelgrab.CollapseWhitespace(candidate.Text),
		Strategy: candidate.Strategy,
	}, nil
}

// extractTitle runs the title cascade: document title, first h1, site
// and generic convention selectors, then the placeholder. The document
// title accepts short values; heading and selector results need enough
// length to rule out icon glyphs and breadcrumb fragments.
func (e *Extractor) extractTitle(doc *goquery.Document, site *novelgrab.SiteProfile) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); len([]rune(t)) >= 2 {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); len([]rune(t)) >= 5 {
		return t
	}

	selectors := genericTitleSelectors
	if site != nil {
		selectors = append(append([]string{}, site.TitleSelectors...), genericTitleSelectors...)
	}
	for _, sel := range selectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); len([]rune(t)) >= 5 {
			return t
		}
	}

	return TitlePlaceholder
}

// specializedScan tries the site's selector pack in priority order.
// Multiple matches for one selector concatenate with blank-line
// separators. The first selector whose cleaned text clears the floor
// and carries no contamination wins.
func (e *Extractor) specializedScan(doc *goquery.Document, site *novelgrab.SiteProfile) *novelgrab.Candidate {
	for _, sel := range site.ContentSelectors {
		selection := doc.Find(sel)
		if selection.Length() == 0 {
			continue
		}

		var parts []string
		selection.Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(selectionText(s)); t != "" {
				parts = append(parts, t)
			}
		})

		cleaned := novelgrab.CleanText(strings.Join(parts, "\n\n"))
		if len([]rune(cleaned)) <= e.cfg.MinSpecialized {
			continue
		}
		if contaminated, _ := novelgrab.IsContaminated(cleaned); contaminated {
			continue
		}

		return &novelgrab.Candidate{
			Strategy: "specialized:" + sel,
			Text:     cleaned,
			Length:   len([]rune(cleaned)),
		}
	}
	return nil
}

// chapterPattern extracts the full body text and captures from one
// chapter heading to the next (or end of text). The first segment in
// document order that clears the raw floor is cleaned and accepted only
// if it stays above the clean floor, still carries a heading, and
// passes the strict contamination check.
func (e *Extractor) chapterPattern(doc *goquery.Document) *novelgrab.Candidate {
	body := selectionText(doc.Find("body"))
	if body == "" {
		return nil
	}

	starts := headingOffsets(body)
	if len(starts) == 0 {
		return nil
	}

	for i, start := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		segment := body[start:end]
		if len([]rune(segment)) <= e.cfg.MinChapterRaw {
			continue
		}

		cleaned := novelgrab.CleanText(segment)
		if len([]rune(cleaned)) <= e.cfg.MinChapterClean {
			continue
		}
		if !novelgrab.HasChapterHeading(cleaned) {
			continue
		}
		if contaminated, _ := novelgrab.IsContaminated(cleaned); contaminated {
			continue
		}
		if novelgrab.UIKeywordRatio(cleaned) > 0.10 {
			continue
		}

		return &novelgrab.Candidate{
			Strategy: "chapter-pattern",
			Text:     cleaned,
			Length:   len([]rune(cleaned)),
		}
	}
	return nil
}

// headingOffsets returns the sorted byte offsets of every chapter
// heading in the text.
func headingOffsets(s string) []int {
	var starts []int
	seen := map[int]bool{}
	for _, re := range novelgrab.ChapterHeadingPatterns() {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			if !seen[loc[0]] {
				seen[loc[0]] = true
				starts = append(starts, loc[0])
			}
		}
	}
	sort.Ints(starts)
	return starts
}

// genericContainer picks the longest of the common content containers.
// If the text is still short, it retries from the first chapter heading
// inside the container. Only minimal cleanup applies at this stage.
func (e *Extractor) genericContainer(doc *goquery.Document) *novelgrab.Candidate {
	var best string
	for _, sel := range genericContainers {
		selection := doc.Find(sel).First()
		if selection.Length() == 0 {
			continue
		}
		if t := strings.TrimSpace(selectionText(selection)); len(t) > len(best) {
			best = t
		}
	}
	if best == "" {
		return nil
	}

	text := novelgrab.StripTrailingControls(best)
	if len([]rune(text)) > e.cfg.MinGeneric {
		return &novelgrab.Candidate{
			Strategy: "generic-container",
			Text:     text,
			Length:   len([]rune(text)),
		}
	}

	if idx := novelgrab.FindChapterHeading(best); idx >= 0 {
		text = novelgrab.StripTrailingControls(best[idx:])
		if len([]rune(text)) > e.cfg.MinGeneric {
			return &novelgrab.Candidate{
				Strategy: "generic-container",
				Text:     text,
				Length:   len([]rune(text)),
			}
		}
	}
	return nil
}

// rankedScan scores the exhaustive selector list by cleaned-text length
// and accepts the best score above the floor. Strictly longer text
// wins; ties resolve to the earlier selector.
func (e *Extractor) rankedScan(doc *goquery.Document) *novelgrab.Candidate {
	var best *novelgrab.Candidate
	for _, sel := range rankedSelectors {
		selection := doc.Find(sel).First()
		if selection.Length() == 0 {
			continue
		}
		cleaned := novelgrab.CleanText(strings.TrimSpace(selectionText(selection)))
		length := len([]rune(cleaned))
		if length <= e.cfg.MinRanked {
			continue
		}
		if best == nil || length > best.Length {
			best = &novelgrab.Candidate{
				Strategy: "ranked:" + sel,
				Text:     cleaned,
				Length:   length,
			}
		}
	}
	return best
}

// paragraphFallback aggregates text-bearing block elements, skipping
// short fragments and nav/ad descendants, up to the fragment budget.
func (e *Extractor) paragraphFallback(doc *goquery.Document) *novelgrab.Candidate {
	var parts []string
	captured := make(map[*html.Node]bool)
	doc.Find("p, div, span, td, li, pre").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.ParentsFiltered(fragmentExclusions).Length() > 0 {
			return true
		}
		// Containers with block children repeat their descendants' text;
		// only leaf-level elements contribute.
		if s.ChildrenFiltered("p, div").Length() > 0 {
			return true
		}
		// Find walks in document order, so a captured ancestor is seen
		// before its descendants. Skip anything nested inside one, or
		// its text would be counted twice.
		node := s.Get(0)
		for n := node.Parent; n != nil; n = n.Parent {
			if captured[n] {
				return true
			}
		}
		t := strings.TrimSpace(selectionText(s))
		if len([]rune(t)) < e.cfg.MinFragment {
			return true
		}
		captured[node] = true
		parts = append(parts, t)
		return len(parts) < e.cfg.MaxFragments
	})

	if len(parts) == 0 {
		return nil
	}

	text := strings.Join(parts, "\n\n")
	return &novelgrab.Candidate{
		Strategy: "paragraph-aggregation",
		Text:     text,
		Length:   len([]rune(text)),
	}
}
