package game

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultRolloverMonths are the month abbreviations that belong to the year
// after the season's start year. Hockey seasons span two calendar years:
// for a 2025-26 season, Oct-Dec games are 2025 and Jan-Mar games are 2026.
var DefaultRolloverMonths = []string{"Jan", "Feb", "Mar"}

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// Matches the "Mon DD" prefix of a date token like "Dec 03 (Wed)".
var datePrefixRE = regexp.MustCompile(`^([A-Za-z]{3})\s+(\d{1,2})`)

// InferYear returns the calendar year for a month abbreviation within a
// season starting in seasonStartYear.
func InferYear(mon string, seasonStartYear int, rolloverMonths []string) int {
	for _, m := range rolloverMonths {
		if m == mon {
			return seasonStartYear + 1
		}
	}
	return seasonStartYear
}

// ISODate converts a raw date token such as "Dec 03 (Wed)" into an ISO
// "YYYY-MM-DD" string, inferring the year from the season. It returns ""
// when the token has no recognizable month/day prefix or the month
// abbreviation is unknown. Pure and total; never fails.
func ISODate(dateText string, seasonStartYear int, rolloverMonths []string) string {
	m := datePrefixRE.FindStringSubmatch(strings.TrimSpace(dateText))
	if m == nil {
		return ""
	}

	mon, day := m[1], m[2]
	num, ok := monthNumbers[mon]
	if !ok {
		return ""
	}
	if len(day) == 1 {
		day = "0" + day
	}

	year := InferYear(mon, seasonStartYear, rolloverMonths)
	return fmt.Sprintf("%d-%s-%s", year, num, day)
}
