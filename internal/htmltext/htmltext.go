// Package htmltext flattens HTML documents into whitespace-normalized text.
//
// The league site exposes no stable markup contract, so downstream parsing
// works over flattened visible text rather than DOM queries. Flatten walks
// the node tree, skips non-visible elements, and collapses all whitespace
// runs to single spaces.
package htmltext

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var spaceRE = regexp.MustCompile(`\s+`)

// Collapse normalizes whitespace: every run of whitespace becomes a single
// space and leading/trailing space is removed.
func Collapse(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}

// Flatten extracts the visible text of an HTML document as one
// whitespace-normalized string. Script, style, and noscript content is
// excluded. Text nodes are joined with spaces so that words from adjacent
// elements never run together.
func Flatten(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return Collapse(b.String()), nil
}
