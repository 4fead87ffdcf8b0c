package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmather/lhl-data/internal/game"
	"github.com/dmather/lhl-data/internal/standings"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	base := t.TempDir()
	s, err := New(filepath.Join(base, "exports"), filepath.Join(base, "data"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return s
}

func TestGamesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	path := s.MonthPath("2025-11")

	records := []game.Record{
		{
			ScrapedAt: "2025-11-01T12:00:00Z",
			DateText:  "Nov 08 (Sat)",
			Time:      "3:15 PM",
			Away:      "Ajax Knights",
			AwayScore: "2",
			Home:      "Whitby Wildcats",
			HomeScore: "4",
			GameCode:  "U14AA-072",
			Venue:     "Iroquois Park Sports Centre",
			GameURL:   "https://lakeshorehockeyleague.net/Groups/1313/Games/200011/",
		},
		{
			ScrapedAt: "2025-11-01T12:00:00Z",
			GameURL:   "https://lakeshorehockeyleague.net/Groups/1313/Games/200012/",
		},
	}

	if err := WriteGames(path, records, false); err != nil {
		t.Fatalf("WriteGames: %v", err)
	}
	got, err := ReadGames(path)
	if err != nil {
		t.Fatalf("ReadGames: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0] != records[0] {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got[0], records[0])
	}
	if got[1].GameURL != records[1].GameURL || got[1].Away != "" {
		t.Errorf("empty-field record mismatch: %+v", got[1])
	}
}

func TestReadGamesMissingFile(t *testing.T) {
	s := newTestStore(t)
	got, err := ReadGames(s.MonthPath("2025-12"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil records, got %v", got)
	}
}

func TestStandingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	rows := []standings.Row{
		{ScrapedAt: "2025-11-01T12:00:00Z", Team: "Whitby Wildcats", GP: "20", W: "15", L: "3", T: "2", Pts: "32", WPct: "0.800", GF: "78", GA: "41", Diff: "+37", GFPct: "65.5", L10: "8-1-1", Strk: "W4"},
	}
	if err := WriteStandings(s.StandingsPath(), rows); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}
	got, err := ReadStandings(s.StandingsPath())
	if err != nil {
		t.Fatalf("ReadStandings: %v", err)
	}
	if len(got) != 1 || got[0] != rows[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestListGameCSVsExcludesStandings(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"2025-11.csv", "2025-10.csv", "standings.csv", "u14aa_standings.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(s.exportsDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := s.ListGameCSVs()
	if err != nil {
		t.Fatalf("ListGameCSVs: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %v, want the two month exports", files)
	}
	if filepath.Base(files[0]) != "2025-10.csv" || filepath.Base(files[1]) != "2025-11.csv" {
		t.Errorf("files not in sorted order: %v", files)
	}
}

func TestParseScrapedAt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"RFC3339 UTC", "2025-11-01T12:00:00Z", true},
		{"RFC3339 with offset", "2025-11-01T07:00:00-05:00", true},
		{"naive timestamp assumed UTC", "2025-11-01T12:00:00", true},
		{"empty", "", false},
		{"garbage", "last tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseScrapedAt(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseScrapedAt(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got.IsZero() {
				t.Error("parseable value returned zero time")
			}
		})
	}

	// Offset timestamps normalize to the same UTC instant.
	a, _ := ParseScrapedAt("2025-11-01T12:00:00Z")
	b, _ := ParseScrapedAt("2025-11-01T07:00:00-05:00")
	if !a.Equal(b) {
		t.Errorf("offset normalization broken: %v vs %v", a, b)
	}
}

func TestCombineLatestWins(t *testing.T) {
	s := newTestStore(t)

	gameURL := "https://lakeshorehockeyleague.net/Groups/1313/Games/200011/"
	older := game.Record{
		ScrapedAt: "2025-11-01T12:00:00Z",
		DateText:  "Nov 08 (Sat)",
		Time:      "3:15 PM",
		Away:      "Ajax Knights",
		Home:      "Whitby Wildcats",
		GameCode:  "U14AA-072",
		GameURL:   gameURL,
	}
	newer := older
	newer.ScrapedAt = "2025-11-09T08:00:00Z"
	newer.AwayScore, newer.HomeScore = "2", "4"

	other := game.Record{
		ScrapedAt: "2025-11-01T12:00:00Z",
		DateText:  "Oct 25 (Sat)",
		Time:      "1:00 PM",
		Away:      "Pickering Panthers",
		Home:      "Oshawa Generals",
		GameCode:  "U14AA-060",
		GameURL:   "https://lakeshorehockeyleague.net/Groups/1313/Games/200009/",
	}

	// The newer scrape lives in the lexically earlier file; merge order
	// must not matter, only the timestamps.
	if err := WriteGames(s.MonthPath("2025-10"), []game.Record{newer, other}, false); err != nil {
		t.Fatal(err)
	}
	if err := WriteGames(s.MonthPath("2025-11"), []game.Record{older}, false); err != nil {
		t.Fatal(err)
	}

	out, err := s.Combine(CombineOptions{SeasonStartYear: 2025})
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}

	// Ascending date order: Oct game first.
	if out[0].GameURL != other.GameURL {
		t.Errorf("expected the October game first, got %+v", out[0])
	}
	if out[0].DateISO != "2025-10-25" {
		t.Errorf("DateISO = %q, want 2025-10-25", out[0].DateISO)
	}

	merged := out[1]
	if merged.GameURL != gameURL {
		t.Fatalf("unexpected record order: %+v", out)
	}
	if merged.AwayScore != "2" || merged.HomeScore != "4" {
		t.Errorf("latest scrape should win, got scores %q/%q", merged.AwayScore, merged.HomeScore)
	}
	if merged.DateISO != "2025-11-08" {
		t.Errorf("DateISO = %q, want 2025-11-08", merged.DateISO)
	}
}

func TestCombineMTimeFallback(t *testing.T) {
	s := newTestStore(t)

	gameURL := "https://lakeshorehockeyleague.net/Groups/1313/Games/200011/"
	noStamp := game.Record{DateText: "Nov 08 (Sat)", Venue: "old scrape", GameURL: gameURL}
	stamped := game.Record{ScrapedAt: "2030-01-01T00:00:00Z", DateText: "Nov 08 (Sat)", Venue: "new scrape", GameURL: gameURL}

	if err := WriteGames(s.MonthPath("2025-10"), []game.Record{noStamp}, false); err != nil {
		t.Fatal(err)
	}
	if err := WriteGames(s.MonthPath("2025-11"), []game.Record{stamped}, false); err != nil {
		t.Fatal(err)
	}

	// The unstamped row's effective time is its file's mtime (now); the
	// stamped row is far in the future and must win.
	out, err := s.Combine(CombineOptions{SeasonStartYear: 2025})
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0].Venue != "new scrape" {
		t.Errorf("kept %q, want the stamped record", out[0].Venue)
	}

	// Sanity: mtime fallback really is newer than the zero time the row
	// would otherwise get.
	mtime, err := fileMTime(s.MonthPath("2025-10"))
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(mtime) > time.Hour {
		t.Errorf("mtime fallback looks wrong: %v", mtime)
	}
}

func TestCombineSkipsRowsWithoutURL(t *testing.T) {
	s := newTestStore(t)

	records := []game.Record{
		{ScrapedAt: "2025-11-01T12:00:00Z", DateText: "Nov 08 (Sat)", GameURL: "https://example.com/Groups/1/Games/1/"},
		{ScrapedAt: "2025-11-01T12:00:00Z", DateText: "Nov 09 (Sun)"},
	}
	if err := WriteGames(s.MonthPath("2025-11"), records, false); err != nil {
		t.Fatal(err)
	}

	out, err := s.Combine(CombineOptions{SeasonStartYear: 2025})
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("rows without a game URL must be skipped, got %d records", len(out))
	}
}

func TestCombineNoFiles(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Combine(CombineOptions{SeasonStartYear: 2025}); err != ErrNoGameCSVs {
		t.Fatalf("expected ErrNoGameCSVs, got %v", err)
	}
}

func TestCombineDescending(t *testing.T) {
	s := newTestStore(t)

	records := []game.Record{
		{ScrapedAt: "2025-11-01T12:00:00Z", DateText: "Oct 04 (Sat)", GameURL: "https://example.com/Groups/1/Games/1/"},
		{ScrapedAt: "2025-11-01T12:00:00Z", DateText: "Dec 13 (Sat)", GameURL: "https://example.com/Groups/1/Games/2/"},
	}
	if err := WriteGames(s.MonthPath("2025-11"), records, false); err != nil {
		t.Fatal(err)
	}

	out, err := s.Combine(CombineOptions{SeasonStartYear: 2025, Descending: true})
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if out[0].DateISO != "2025-12-13" {
		t.Errorf("descending sort broken: first record %+v", out[0])
	}
}

func TestWriteCombined(t *testing.T) {
	s := newTestStore(t)

	records := []game.Record{
		{ScrapedAt: "2025-11-01T12:00:00Z", DateText: "Nov 08 (Sat)", DateISO: "2025-11-08", GameURL: "https://example.com/Groups/1/Games/1/"},
	}
	if err := s.WriteCombined(records); err != nil {
		t.Fatalf("WriteCombined: %v", err)
	}

	got, err := ReadGames(s.CombinedCSVPath())
	if err != nil {
		t.Fatalf("reading combined CSV: %v", err)
	}
	if len(got) != 1 || got[0].DateISO != "2025-11-08" {
		t.Errorf("combined CSV should carry game_date_iso: %+v", got)
	}

	data, err := os.ReadFile(s.GamesJSONPath())
	if err != nil {
		t.Fatalf("reading games.json: %v", err)
	}
	if len(data) == 0 || data[0] != '[' {
		t.Errorf("games.json should be a JSON array, got %q", string(data))
	}
}
