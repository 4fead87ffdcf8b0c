// Package game defines the game record model and the anchored text parser
// that extracts records from flattened detail-page text.
package game

import (
	"strings"

	"github.com/dmather/lhl-data/internal/htmltext"
)

// Record represents one scraped game. Every field is text; an empty string
// means "could not determine". GameURL is the identity key: exactly one
// Record per GameURL survives reconciliation.
type Record struct {
	ScrapedAt string `json:"scraped_at"`
	DateText  string `json:"date_text"`
	Time      string `json:"time"`
	Away      string `json:"away"`
	AwayScore string `json:"away_score"`
	Home      string `json:"home"`
	HomeScore string `json:"home_score"`
	GameCode  string `json:"game_code"`
	Venue     string `json:"venue"`
	GameURL   string `json:"game_url"`
	DateISO   string `json:"game_date_iso"` // derived, may be empty
}

// CSVFields is the canonical column order for game CSV exports.
var CSVFields = []string{
	"scraped_at", "date_text", "time", "away", "away_score",
	"home", "home_score", "game_code", "venue", "game_url",
}

// Key returns the record's identity key.
func (r Record) Key() string {
	return r.GameURL
}

// ChangeKey returns a comparison key over every field except the capture
// timestamp (and the derived date), whitespace-normalized. Two records with
// equal ChangeKeys are the same game content regardless of when they were
// scraped.
func (r Record) ChangeKey() string {
	parts := []string{
		htmltext.Collapse(r.DateText),
		htmltext.Collapse(r.Time),
		htmltext.Collapse(r.Away),
		htmltext.Collapse(r.Home),
		htmltext.Collapse(r.GameCode),
		htmltext.Collapse(r.Venue),
		htmltext.Collapse(r.GameURL),
		htmltext.Collapse(r.AwayScore),
		htmltext.Collapse(r.HomeScore),
	}
	return strings.Join(parts, "\x1f")
}
