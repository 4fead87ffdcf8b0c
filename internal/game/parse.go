package game

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmather/lhl-data/internal/htmltext"
)

// The detail pages expose no stable markup, so parsing anchors on rigid
// tokens in the flattened text and slices around them rather than matching
// one big pattern over the whole page. Example of the text we parse:
//
//	Oct 04 Sat 5:30 PM North Durham Warriors 5 @ Belleville Bulls 0 U14AA-041 Quinte Sports & Wellness Centre ...
var (
	// Front matter: "Mon DD DOW H:MM AM/PM rest..."
	headerRE = regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\b\s+(\d{1,2})\s+(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\s+(\d{1,2}:\d{2}\s*(?:AM|PM))\s+(?s:(.+))`)

	// The league-assigned game code, e.g. "U14AA-041". Anchoring on it
	// prevents parsing drift when surrounding text shifts.
	codeRE = regexp.MustCompile(`\bU\d{1,2}AA-\d{3}\b`)

	// Left of the code: "Away [score] @ Home [score]"
	teamsRE = regexp.MustCompile(`(?s)^(.+?)(?:\s+(\d+))?\s+@\s+(.+?)(?:\s+(\d+))?$`)
)

// stopPhrases mark where venue text ends and footer/menu noise begins. The
// earliest occurrence of any phrase truncates the venue.
var stopPhrases = []string{
	"More Venue Details", "Officials", "Game Notes", "Box Score",
	"Webmail", "Safe Sport", "Privacy Policy", "Terms of Use",
	"Website Help", "Sitemap", "Contact", "Subscribe",
}

// ErrNoGameURL is returned when Parse is called without an identity key.
var ErrNoGameURL = errors.New("game URL is required")

// Parse extracts a game Record from flattened detail-page text. Malformed
// input is never an error: fields that cannot be determined stay empty and
// partial success is preserved (a recognizable header without a game code
// still yields date and time). The only error is a missing gameURL, which
// is a contract violation by the caller.
func Parse(text, gameURL string) (Record, error) {
	if gameURL == "" {
		return Record{}, ErrNoGameURL
	}

	rec := Record{
		ScrapedAt: time.Now().UTC().Format(time.RFC3339),
		GameURL:   gameURL,
	}

	text = htmltext.Collapse(text)
	if text == "" {
		return rec, nil
	}

	hm := headerRE.FindStringSubmatch(text)
	if hm == nil {
		// No recognizable schedule header on the page.
		return rec, nil
	}

	mon, day, dow := hm[1], hm[2], hm[3]
	if len(day) == 1 {
		day = "0" + day
	}
	rec.DateText = fmt.Sprintf("%s %s (%s)", mon, day, dow)
	rec.Time = htmltext.Collapse(hm[4])

	rest := htmltext.Collapse(hm[5])

	loc := codeRE.FindStringIndex(rest)
	if loc == nil {
		// No game code anchor: keep date/time, bail on the rest.
		return rec, nil
	}
	rec.GameCode = rest[loc[0]:loc[1]]

	left := htmltext.Collapse(rest[:loc[0]])
	right := htmltext.Collapse(rest[loc[1]:])

	if tm := teamsRE.FindStringSubmatch(left); tm != nil {
		rec.Away = htmltext.Collapse(tm[1])
		rec.AwayScore = tm[2]
		rec.Home = htmltext.Collapse(tm[3])
		rec.HomeScore = tm[4]
	}

	rec.Venue = stripAtStopPhrases(right)

	return rec, nil
}

// stripAtStopPhrases truncates s at the earliest stop phrase (matched
// case-insensitively) and trims trailing separator punctuation.
func stripAtStopPhrases(s string) string {
	clean := htmltext.Collapse(s)
	lower := strings.ToLower(clean)

	cutAt := -1
	for _, phrase := range stopPhrases {
		idx := strings.Index(lower, strings.ToLower(phrase))
		if idx != -1 && (cutAt == -1 || idx < cutAt) {
			cutAt = idx
		}
	}
	if cutAt != -1 {
		clean = strings.Trim(clean[:cutAt], " -|")
	}
	return clean
}
