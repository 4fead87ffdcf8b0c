package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dmather/lhl-data/internal/standings"
)

// WriteStandings writes standings rows to a CSV with the canonical column
// order.
func WriteStandings(path string, rows []standings.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(standings.CSVFields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ScrapedAt, row.Team, row.GP, row.W, row.L, row.T, row.Pts,
			row.WPct, row.GF, row.GA, row.Diff, row.GFPct, row.L10, row.Strk,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadStandings reads standings rows from a CSV export. A missing file
// reads as an empty snapshot.
func ReadStandings(path string) ([]standings.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(raw[0]))
	for i, name := range raw[0] {
		col[name] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rows := make([]standings.Row, 0, len(raw)-1)
	for _, row := range raw[1:] {
		rows = append(rows, standings.Row{
			ScrapedAt: get(row, "scraped_at"),
			Team:      get(row, "team"),
			GP:        get(row, "gp"),
			W:         get(row, "w"),
			L:         get(row, "l"),
			T:         get(row, "t"),
			Pts:       get(row, "pts"),
			WPct:      get(row, "w_pct"),
			GF:        get(row, "gf"),
			GA:        get(row, "ga"),
			Diff:      get(row, "diff"),
			GFPct:     get(row, "gf_pct"),
			L10:       get(row, "l10"),
			Strk:      get(row, "strk"),
		})
	}
	return rows, nil
}
