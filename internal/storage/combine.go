package storage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dmather/lhl-data/internal/game"
	"github.com/dmather/lhl-data/internal/logger"
	"github.com/dmather/lhl-data/internal/snapshot"
)

// ErrNoGameCSVs is returned by Combine when the exports directory holds no
// game exports to merge.
var ErrNoGameCSVs = errors.New("no game CSV files found")

// CombineOptions controls the combine step.
type CombineOptions struct {
	SeasonStartYear int
	RolloverMonths  []string
	Descending      bool
}

// Combine merges every game export into one deduplicated snapshot. Records
// sharing a game URL are reconciled latest-wins: the effective timestamp is
// the row's parsed scraped_at, falling back to the source file's mtime when
// unparseable. Files are enumerated in sorted filename order, so
// equal-timestamp ties resolve deterministically. Each surviving record
// gains a derived ISO date and the result is sorted by date, time, then
// teams, with undated records last.
func (s *Store) Combine(opts CombineOptions) ([]game.Record, error) {
	files, err := s.ListGameCSVs()
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoGameCSVs
	}

	rollover := opts.RolloverMonths
	if rollover == nil {
		rollover = game.DefaultRolloverMonths
	}

	merger := snapshot.NewMerger(game.Record.Key)

	for _, path := range files {
		records, err := ReadGames(path)
		if err != nil {
			return nil, err
		}
		mtime, err := fileMTime(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		for _, rec := range records {
			if rec.GameURL == "" {
				// Not reconcilable without an identity.
				continue
			}
			at, ok := ParseScrapedAt(rec.ScrapedAt)
			if !ok {
				at = mtime
			}
			rec.DateISO = game.ISODate(rec.DateText, opts.SeasonStartYear, rollover)
			merger.Add(rec, at)
		}

		logger.Debug("merged export", logger.Fields{"file": path, "rows": len(records)})
	}

	out := merger.Records()
	sortCombined(out, opts.Descending)
	return out, nil
}

// WriteCombined writes the combined snapshot as CSV (with the derived date
// column) and JSON.
func (s *Store) WriteCombined(records []game.Record) error {
	if err := WriteGames(s.CombinedCSVPath(), records, true); err != nil {
		return err
	}
	return WriteGamesJSON(s.GamesJSONPath(), records)
}

// sortCombined orders records by ISO date, time, away, home. Records
// without a derivable date take a sentinel date that sorts after all real
// dates, so they land last in ascending order.
func sortCombined(records []game.Record, descending bool) {
	key := func(r game.Record) [4]string {
		date := r.DateISO
		if date == "" {
			date = "9999-99-99"
		}
		return [4]string{date, r.Time, r.Away, r.Home}
	}
	sort.SliceStable(records, func(i, j int) bool {
		ki, kj := key(records[i]), key(records[j])
		for n := range ki {
			if ki[n] != kj[n] {
				if descending {
					return ki[n] > kj[n]
				}
				return ki[n] < kj[n]
			}
		}
		return false
	})
}
