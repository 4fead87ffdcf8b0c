// Package snapshot reconciles repeated scrapes of the same entities and
// decides whether a fresh snapshot differs from a persisted one.
//
// A Merger keeps exactly one record per identity key, replacing an entry only
// when an incoming record carries a strictly newer timestamp. On equal
// timestamps the existing entry wins, so the result is stable by input
// order: feeding the same inputs again (in the same order) cannot change
// the outcome. Input order is typically sorted filename order when merging
// exported CSVs, which makes the tie-break deterministic for a given
// directory state.
package snapshot

import (
	"sort"
	"time"
)

type entry[T any] struct {
	rec T
	at  time.Time
}

// Merger merges records sharing an identity key, keeping the most recent.
type Merger[T any] struct {
	key  func(T) string
	seen map[string]int
	recs []entry[T]
}

// NewMerger creates a Merger using key to derive each record's identity.
func NewMerger[T any](key func(T) string) *Merger[T] {
	return &Merger[T]{
		key:  key,
		seen: make(map[string]int),
	}
}

// Add offers a record captured at the given time. An unseen identity is
// stored; a seen identity is replaced only if at is strictly newer than the
// stored entry's time.
func (m *Merger[T]) Add(rec T, at time.Time) {
	k := m.key(rec)
	if i, ok := m.seen[k]; ok {
		if at.After(m.recs[i].at) {
			m.recs[i] = entry[T]{rec: rec, at: at}
		}
		return
	}
	m.seen[k] = len(m.recs)
	m.recs = append(m.recs, entry[T]{rec: rec, at: at})
}

// Records returns the surviving records, one per identity key, in the order
// their keys were first seen.
func (m *Merger[T]) Records() []T {
	out := make([]T, len(m.recs))
	for i, e := range m.recs {
		out[i] = e.rec
	}
	return out
}

// Len returns the number of distinct identity keys seen so far.
func (m *Merger[T]) Len() int {
	return len(m.recs)
}

// Changed reports whether two record snapshots differ. Each record is
// reduced to a comparison key via key (which must exclude volatile fields
// such as capture timestamps) and the sorted key sequences are compared, so
// the verdict is independent of record ordering.
func Changed[T any](old, current []T, key func(T) string) bool {
	if len(old) != len(current) {
		return true
	}

	oldKeys := make([]string, len(old))
	for i, r := range old {
		oldKeys[i] = key(r)
	}
	newKeys := make([]string, len(current))
	for i, r := range current {
		newKeys[i] = key(r)
	}
	sort.Strings(oldKeys)
	sort.Strings(newKeys)

	for i := range oldKeys {
		if oldKeys[i] != newKeys[i] {
			return true
		}
	}
	return false
}
