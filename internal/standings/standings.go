// Package standings extracts the league standings table into structured
// rows via header-alias mapping.
package standings

import (
	"strings"

	"github.com/dmather/lhl-data/internal/htmltext"
)

// Row represents one team's standings line. Team is the identity key:
// case-insensitive for comparison, case-preserving for display.
type Row struct {
	ScrapedAt string `json:"scraped_at"`
	Team      string `json:"team"`
	GP        string `json:"gp"`
	W         string `json:"w"`
	L         string `json:"l"`
	T         string `json:"t"`
	Pts       string `json:"pts"`
	WPct      string `json:"w_pct"`
	GF        string `json:"gf"`
	GA        string `json:"ga"`
	Diff      string `json:"diff"`
	GFPct     string `json:"gf_pct"`
	L10       string `json:"l10"`
	Strk      string `json:"strk"`
}

// CSVFields is the canonical column order for standings CSV exports.
var CSVFields = []string{
	"scraped_at", "team", "gp", "w", "l", "t", "pts",
	"w_pct", "gf", "ga", "diff", "gf_pct", "l10", "strk",
}

// ChangeKey returns a comparison key over the core standings columns,
// excluding the capture timestamp. Team names are case-folded.
func (r Row) ChangeKey() string {
	parts := []string{
		strings.ToLower(htmltext.Collapse(r.Team)),
		htmltext.Collapse(r.GP),
		htmltext.Collapse(r.W),
		htmltext.Collapse(r.L),
		htmltext.Collapse(r.T),
		htmltext.Collapse(r.Pts),
	}
	return strings.Join(parts, "\x1f")
}
