// Package activitylog writes structured JSONL entries describing what
// happened during a terminal session.
package activitylog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger appends JSONL entries to an activity log file. All methods
// are safe for concurrent use. When disabled (w is nil), all methods
// are no-ops.
type Logger struct {
	mu        sync.Mutex
	w         *os.File
	sessionID string
}

// New creates a Logger that appends to logPath. If enabled is false or
// the file cannot be opened, returns a no-op logger (safe to call
// methods on).
func New(enabled bool, logPath, sessionID string) *Logger {
	if !enabled {
		return &Logger{}
	}
	os.MkdirAll(filepath.Dir(logPath), 0o755)
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Logger{}
	}
	return &Logger{w: f, sessionID: sessionID}
}

// Nop returns a disabled logger. All methods are no-ops.
func Nop() *Logger {
	return &Logger{}
}

// entry is the common envelope for all log lines.
type entry struct {
	Timestamp string `json:"ts"`
	SessionID string `json:"session_id"`
	Event     string `json:"event"`
}

// SessionStart logs the beginning of an interactive session.
func (l *Logger) SessionStart(model string, cols, rows int) {
	l.log(struct {
		entry
		Model string `json:"model"`
		Cols  int    `json:"cols"`
		Rows  int    `json:"rows"`
	}{
		entry: l.entry("session_start"),
		Model: model,
		Cols:  cols,
		Rows:  rows,
	})
}

// SessionStop logs the end of a session with its cumulative token use.
func (l *Logger) SessionStop(tokens int64) {
	l.log(struct {
		entry
		Tokens int64 `json:"tokens"`
	}{
		entry:  l.entry("session_stop"),
		Tokens: tokens,
	})
}

// Submit logs a submitted input line.
func (l *Logger) Submit(length int) {
	l.log(struct {
		entry
		Length int `json:"length"`
	}{
		entry:  l.entry("submit"),
		Length: length,
	})
}

// Resize logs a terminal dimension change.
func (l *Logger) Resize(cols, rows int) {
	l.log(struct {
		entry
		Cols int `json:"cols"`
		Rows int `json:"rows"`
	}{
		entry: l.entry("resize"),
		Cols:  cols,
		Rows:  rows,
	})
}

// Notice logs a system notice surfaced to the chat area.
func (l *Logger) Notice(kind, text string) {
	l.log(struct {
		entry
		Kind string `json:"kind"`
		Text string `json:"text"`
	}{
		entry: l.entry("notice"),
		Kind:  kind,
		Text:  text,
	})
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l.w == nil {
		return nil
	}
	return l.w.Close()
}

func (l *Logger) entry(event string) entry {
	return entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		SessionID: l.sessionID,
		Event:     event,
	}
}

func (l *Logger) log(v any) {
	if l.w == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(append(data, '\n'))
}
