package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nextLinkSelectors are tried in order before falling back to anchor
// text matching.
var nextLinkSelectors = []string{
	"a[rel=next]",
	"a#next_url",
	"a#pb_next",
	"a.next",
	".page-read a.next",
}

// nextTextRe matches next-chapter anchor labels.
var nextTextRe = regexp.MustCompile(`^(下一章|下一页|下章|next\s*chapter)$`)

// NextChapterURL locates the next-chapter link in a chapter page and
// resolves it against the page URL. Returns false when no usable link
// exists. Only same-host links qualify; listing-page and off-site
// anchors are skipped.
func NextChapterURL(htmlStr string, pageURL string) (string, bool) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", false
	}

	for _, sel := range nextLinkSelectors {
		if next, ok := resolveAnchor(doc.Find(sel).First(), base); ok {
			return next, true
		}
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label := strings.ToLower(strings.TrimSpace(s.Text()))
		if !nextTextRe.MatchString(label) {
			return true
		}
		if next, ok := resolveAnchor(s, base); ok {
			found = next
			return false
		}
		return true
	})
	return found, found != ""
}

// resolveAnchor resolves an anchor's href against the base URL.
// Self-referential, fragment-only, and cross-host links resolve to
// nothing.
func resolveAnchor(s *goquery.Selection, base *url.URL) (string, bool) {
	href, exists := s.Attr("href")
	if !exists || href == "" || strings.HasPrefix(href, "javascript:") {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	if resolved.Host != base.Host {
		return "", false
	}

	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if resolved.String() == baseNoFragment.String() {
		return "", false
	}
	return resolved.String(), true
}
