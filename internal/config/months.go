package config

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var monthTokenRE = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidateMonth checks a "YYYY-MM" month token. Invalid tokens must be
// rejected before any network activity begins.
func ValidateMonth(token string) error {
	if !monthTokenRE.MatchString(token) {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", token)
	}
	mm := token[5:7]
	if mm < "01" || mm > "12" {
		return fmt.Errorf("invalid month %q: month part must be 01-12", token)
	}
	return nil
}

// SplitMonth parses a validated "YYYY-MM" token into year and month.
func SplitMonth(token string) (year, month int, err error) {
	if err := ValidateMonth(token); err != nil {
		return 0, 0, err
	}
	year, _ = strconv.Atoi(token[:4])
	month, _ = strconv.Atoi(token[5:7])
	return year, month, nil
}

// DefaultMonths returns the current and next month as "YYYY-MM" tokens.
// Used when no explicit months are given.
func DefaultMonths(now time.Time) []string {
	current := now.Format("2006-01")
	next := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return []string{current, next.Format("2006-01")}
}
