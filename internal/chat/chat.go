// Package chat retains the session's message transcript for rendering.
package chat

import "time"

// Kind classifies who produced a message.
type Kind int

const (
	KindSystem Kind = iota
	KindUser
	KindAssistant
)

// Label returns the transcript prefix for the kind.
func (k Kind) Label() string {
	switch k {
	case KindUser:
		return "you"
	case KindAssistant:
		return "assistant"
	}
	return "system"
}

// Message is one transcript line.
type Message struct {
	Kind Kind
	Text string
	Time time.Time
}

// Log is a bounded, append-only message list. Oldest messages are
// evicted once the bound is exceeded.
type Log struct {
	msgs []Message
	max  int
}

// DefaultLimit bounds a Log created with a non-positive limit.
const DefaultLimit = 500

// NewLog creates a Log retaining at most limit messages.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{max: limit}
}

// Append adds a message, evicting the oldest when over the limit.
func (l *Log) Append(kind Kind, text string) {
	l.msgs = append(l.msgs, Message{Kind: kind, Text: text, Time: time.Now()})
	if len(l.msgs) > l.max {
		l.msgs = l.msgs[len(l.msgs)-l.max:]
	}
}

// Len returns the number of retained messages.
func (l *Log) Len() int { return len(l.msgs) }

// Tail returns the newest n messages in chronological order. It
// returns all messages when n exceeds the count.
func (l *Log) Tail(n int) []Message {
	if n >= len(l.msgs) {
		return l.msgs
	}
	return l.msgs[len(l.msgs)-n:]
}
