package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug msg", nil)
	l.Info("info msg", nil)
	l.Warn("warn msg", nil)
	l.Error("error msg", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "warn msg") {
		t.Errorf("first line should be the warning, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("error line should carry the error string, got %q", lines[1])
	}
}

func TestLoggerJSONShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("fetched page", Fields{"url": "https://example.com", "status": 200})

	var e map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if e["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", e["level"])
	}
	if e["message"] != "fetched page" {
		t.Errorf("message = %v, want 'fetched page'", e["message"])
	}
	fields, ok := e["fields"].(map[string]interface{})
	if !ok {
		t.Fatal("fields missing from entry")
	}
	if fields["url"] != "https://example.com" {
		t.Errorf("fields.url = %v", fields["url"])
	}
}

func TestTimings(t *testing.T) {
	tr := NewTimings()
	tr.Record("fetch.game", 100*time.Millisecond)
	tr.Record("fetch.game", 300*time.Millisecond)
	tr.Record("fetch.game", 200*time.Millisecond)

	stats := tr.Stats()
	s, ok := stats["fetch.game"]
	if !ok {
		t.Fatal("expected fetch.game stats")
	}
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.Min != 100*time.Millisecond {
		t.Errorf("Min = %v, want 100ms", s.Min)
	}
	if s.Max != 300*time.Millisecond {
		t.Errorf("Max = %v, want 300ms", s.Max)
	}
	if s.Total != 600*time.Millisecond {
		t.Errorf("Total = %v, want 600ms", s.Total)
	}
}
