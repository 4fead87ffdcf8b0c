package scraper

import (
	"io"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Only links shaped like "/Groups/<id>/Games/<id>" are game detail pages;
// everything else on a schedule page is navigation.
var gameLinkRE = regexp.MustCompile(`^/Groups/\d+/Games/\d+/?$`)

// ExtractGameLinks pulls the set of game detail-page URLs out of a schedule
// page, resolved against baseURL. The result is sorted and duplicate-free
// regardless of source order.
func ExtractGameLinks(r io.Reader, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if !gameLinkRE.MatchString(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		seen[base.ResolveReference(ref).String()] = struct{}{}
	})

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)
	return links, nil
}
