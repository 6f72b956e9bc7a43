package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockElements end a text line when rendering a selection to text.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "td": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true, "blockquote": true, "section": true, "article": true,
}

// skipElements never contribute text.
var skipElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
}

// selectionText renders a selection to plain text, preserving line
// structure: <br> and block boundaries become newlines. goquery's own
// Text() concatenates everything, which destroys the line-based cleanup
// rules downstream.
func selectionText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		nodeText(n, &sb)
	}
	return sb.String()
}

func nodeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipElements[n.Data] {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodeText(c, sb)
	}
	if n.Type == html.ElementNode && blockElements[n.Data] {
		sb.WriteString("\n")
	}
}
