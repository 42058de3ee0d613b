// Package history keeps a bounded, append-only log of past calculations.
// The log itself is pure in-memory state with keep-last-N semantics; file
// persistence lives in Store, and undo/redo navigation in Cursor.
//
// A Log is owned by a single logical session and is not safe for concurrent
// use; callers that share one across goroutines must serialize access.
package history

import "time"

// DefaultCapacity is the bound applied when none is given.
const DefaultCapacity = 50

// Input is one magnitude/angle pair beyond the first two, kept for
// calculations with more than two vectors.
type Input struct {
	Magnitude    float64 `json:"magnitude"`
	AngleDegrees float64 `json:"angle_degrees"`
}

// Result is the resultant snapshot stored with each entry.
type Result struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Mag   float64 `json:"mag"`
	Angle float64 `json:"angle"`
}

// Entry is one recorded calculation. The flat f1/f2 fields are the wire
// format older sessions persisted; Extra carries any inputs past the second.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	F1Mag     float64   `json:"f1_mag"`
	F1Angle   float64   `json:"f1_angle"`
	F2Mag     float64   `json:"f2_mag"`
	F2Angle   float64   `json:"f2_angle"`
	Scale     float64   `json:"scale"`
	Result    Result    `json:"result"`
	Extra     []Input   `json:"extra,omitempty"`
}

// Log is a bounded append-only sequence of entries, oldest first.
type Log struct {
	capacity int
	entries  []Entry
}

// NewLog returns an empty log bounded at capacity; a non-positive capacity
// uses DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Add appends an entry, evicting the oldest entries once the bound is
// exceeded.
func (l *Log) Add(e Entry) {
	l.entries = append(l.entries, e)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// All returns a copy of every entry, oldest first. Mutating the returned
// slice does not affect the log.
func (l *Log) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent n entries, oldest first among those
// returned. n larger than the log returns the whole log.
func (l *Log) Last(n int) []Entry {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Clear empties the log.
func (l *Log) Clear() {
	l.entries = nil
}

// Len reports the number of entries.
func (l *Log) Len() int { return len(l.entries) }

// Replace installs externally loaded entries, trimming to the bound. Used
// when a Store hands a persisted session back to the log.
func (l *Log) Replace(entries []Entry) {
	l.entries = make([]Entry, len(entries))
	copy(l.entries, entries)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}
