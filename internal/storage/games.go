package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmather/lhl-data/internal/game"
)

// WriteGames writes game records to a CSV with the canonical column order.
// When withDateISO is set, a derived game_date_iso column is appended (the
// combined export carries it; per-month exports do not).
func WriteGames(path string, records []game.Record, withDateISO bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	fields := game.CSVFields
	if withDateISO {
		fields = append(append([]string{}, fields...), "game_date_iso")
	}

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ScrapedAt, rec.DateText, rec.Time, rec.Away, rec.AwayScore,
			rec.Home, rec.HomeScore, rec.GameCode, rec.Venue, rec.GameURL,
		}
		if withDateISO {
			row = append(row, rec.DateISO)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadGames reads game records from a CSV export. Columns are matched by
// header name, so files with or without the derived date column both load.
// A missing file is not an error; it reads as an empty snapshot.
func ReadGames(path string) ([]game.Record, error) {
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
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]game.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, game.Record{
			ScrapedAt: get(row, "scraped_at"),
			DateText:  get(row, "date_text"),
			Time:      get(row, "time"),
			Away:      get(row, "away"),
			AwayScore: get(row, "away_score"),
			Home:      get(row, "home"),
			HomeScore: get(row, "home_score"),
			GameCode:  get(row, "game_code"),
			Venue:     get(row, "venue"),
			GameURL:   get(row, "game_url"),
			DateISO:   get(row, "game_date_iso"),
		})
	}
	return records, nil
}

// WriteGamesJSON writes game records as an indented JSON array.
func WriteGamesJSON(path string, records []game.Record) error {
	if records == nil {
		records = []game.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding games: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
