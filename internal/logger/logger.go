// Package logger provides structured JSON logging and request timing metrics
// for the LHL data pipeline.
//
// Log entries are emitted as one JSON object per line with a timestamp,
// level, message, and optional structured fields. Timings accumulate
// per-request durations (e.g. detail-page fetches) and expose simple
// count/total/min/max statistics.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger writes leveled, structured log entries
type Logger struct {
	minLevel Level
	output   io.Writer
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger that discards messages below the given level.
func New(level Level, output io.Writer) *Logger {
	return &Logger{minLevel: level, output: output}
}

// SetDefault replaces the package-level logger used by the convenience
// functions. Useful for enabling debug output from a --verbose flag.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, marshalErr := json.Marshal(e)
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			e.Timestamp, e.Level, e.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// Debug logs a debug message with optional structured fields.
func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }

// Info logs an informational message with optional structured fields.
func (l *Logger) Info(message string, fields Fields) { l.log(LevelInfo, message, fields, nil) }

// Warn logs a warning message with optional structured fields.
func (l *Logger) Warn(message string, fields Fields) { l.log(LevelWarn, message, fields, nil) }

// Error logs an error message with optional structured fields and an error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using the default logger

func Debug(message string, fields Fields) { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)  { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)  { defaultLogger.Warn(message, fields) }
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Timings tracks duration measurements keyed by name. Thread-safe, so
// concurrent fetch tasks can record into one tracker.
type Timings struct {
	mu        sync.Mutex
	durations map[string][]time.Duration
}

var defaultTimings = NewTimings()

// NewTimings creates an empty timing tracker.
func NewTimings() *Timings {
	return &Timings{durations: make(map[string][]time.Duration)}
}

// Record adds one duration measurement under name.
func (t *Timings) Record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.durations[name] = append(t.durations[name], d)
}

// TimingStats summarizes the measurements recorded under one name.
type TimingStats struct {
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Stats returns statistics for every recorded name.
func (t *Timings) Stats() map[string]TimingStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]TimingStats, len(t.durations))
	for name, ds := range t.durations {
		if len(ds) == 0 {
			continue
		}
		s := TimingStats{Count: len(ds), Min: ds[0], Max: ds[0]}
		for _, d := range ds {
			s.Total += d
			if d < s.Min {
				s.Min = d
			}
			if d > s.Max {
				s.Max = d
			}
		}
		out[name] = s
	}
	return out
}

// RecordTiming records a duration on the default tracker.
func RecordTiming(name string, d time.Duration) {
	defaultTimings.Record(name, d)
}

// TimingSnapshot returns statistics from the default tracker.
func TimingSnapshot() map[string]TimingStats {
	return defaultTimings.Stats()
}
