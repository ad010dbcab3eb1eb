// Package msglog keeps the short list of recent messages shown to the player.
package msglog

import "fmt"

// DefaultCapacity is the number of messages kept when none is configured.
const DefaultCapacity = 5

// Log is a capped, ordered message buffer. When full, adding a message
// evicts the oldest one.
type Log struct {
	capacity int
	entries  []string
}

// New creates a log holding at most capacity messages.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		entries:  make([]string, 0, capacity),
	}
}

// Add appends a message, evicting the oldest if the log is full.
func (l *Log) Add(msg string) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, msg)
}

// Addf formats and appends a message.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Messages returns a copy of the log, oldest first.
func (l *Log) Messages() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the newest message, or "" if the log is empty.
func (l *Log) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}

// Len returns the number of stored messages.
func (l *Log) Len() int { return len(l.entries) }

// Cap returns the log's capacity.
func (l *Log) Cap() int { return l.capacity }

// Clear drops every message.
func (l *Log) Clear() {
	l.entries = l.entries[:0]
}
