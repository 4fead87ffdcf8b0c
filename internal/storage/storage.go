// Package storage persists scraped records as CSV exports and combined
// CSV/JSON snapshots, and reads prior exports back for reconciliation and
// change detection.
//
// Layout: per-month game exports live in the exports directory as
// "YYYY-MM.csv" next to the standings export; combined output goes to the
// data directory as combined.csv and games.json. Writes are gated by the
// caller: when a fresh snapshot is unchanged, existing files are left
// untouched.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// StandingsFile is the standings export filename. Game CSV discovery
	// excludes any filename containing "standings".
	StandingsFile = "standings.csv"

	CombinedCSVFile = "combined.csv"
	GamesJSONFile   = "games.json"
)

// Store reads and writes pipeline files under an exports directory and a
// data directory.
type Store struct {
	exportsDir string
	dataDir    string
}

// New creates a Store, creating both directories if needed.
func New(exportsDir, dataDir string) (*Store, error) {
	for _, dir := range []string{exportsDir, dataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return &Store{exportsDir: exportsDir, dataDir: dataDir}, nil
}

// MonthPath returns the export path for one month token ("2025-11").
func (s *Store) MonthPath(month string) string {
	return filepath.Join(s.exportsDir, month+".csv")
}

// StandingsPath returns the standings export path.
func (s *Store) StandingsPath() string {
	return filepath.Join(s.exportsDir, StandingsFile)
}

// CombinedCSVPath returns the combined CSV output path.
func (s *Store) CombinedCSVPath() string {
	return filepath.Join(s.dataDir, CombinedCSVFile)
}

// GamesJSONPath returns the combined JSON output path.
func (s *Store) GamesJSONPath() string {
	return filepath.Join(s.dataDir, GamesJSONFile)
}

// ListGameCSVs returns every game export CSV in the exports directory in
// sorted filename order, excluding standings files.
func (s *Store) ListGameCSVs() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.exportsDir, "*.csv"))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, p := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(p)), "standings") {
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// ParseScrapedAt parses a scraped_at value, accepting RFC3339 (with or
// without a zone offset; a trailing "Z" counts as UTC). Naive timestamps
// are assumed UTC. The second result is false when the value is not
// parseable.
func ParseScrapedAt(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func fileMTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime().UTC(), nil
}
