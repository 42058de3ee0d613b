package history

// Cursor navigates a log for undo/redo: it tracks which entry is currently
// displayed and steps backward or forward through the recorded calculations.
// The log is never mutated; stepping only re-selects an entry.
type Cursor struct {
	log   *Log
	index int
}

// NewCursor returns a cursor positioned on the newest entry.
func NewCursor(log *Log) *Cursor {
	return &Cursor{log: log, index: log.Len() - 1}
}

// Undo steps to the previous calculation and returns it. The second return
// is false when already at the oldest entry (or the log is empty).
func (c *Cursor) Undo() (Entry, bool) {
	if c.index <= 0 {
		return Entry{}, false
	}
	c.index--
	return c.log.entries[c.index], true
}

// Redo steps to the next calculation and returns it. The second return is
// false when already at the newest entry.
func (c *Cursor) Redo() (Entry, bool) {
	if c.index >= c.log.Len()-1 {
		return Entry{}, false
	}
	c.index++
	return c.log.entries[c.index], true
}

// Reset moves the cursor to the newest entry, as after a fresh calculation.
func (c *Cursor) Reset() {
	c.index = c.log.Len() - 1
}
