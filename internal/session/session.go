// Package session ties the terminal, decoder, editor, history, and
// renderer together into the interactive loop.
//
// The design is single-threaded: one goroutine owns the terminal
// device, the editor, and the history ring for the session's entire
// lifetime. Asynchronous producers (resize signals, agent replies)
// only ever post to channels that the loop drains at the top of each
// iteration.
package session

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"claw/internal/activitylog"
	"claw/internal/chat"
	"claw/internal/config"
	"claw/internal/editor"
	"claw/internal/history"
	"claw/internal/key"
	"claw/internal/term"
	"claw/internal/ui"
)

// State is the session lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// Session owns the terminal and all interactive state.
type Session struct {
	ID      string
	Term    *term.Terminal
	Editor  *editor.Editor
	History *history.Ring
	Chat    *chat.Log
	Panels  map[ui.PanelKind]*ui.Panel
	Log     *activitylog.Logger

	// Output receives the rendered ANSI stream. Defaults to stdout.
	Output io.Writer
	// OnSubmit receives the text of every submitted non-empty line.
	OnSubmit func(text string)
	// Status supplies the status bar content (model, tokens, branch).
	// Never hardcoded here; the agent collaborator owns these values.
	Status func() ui.Status
	// Sessions is the sidebar content.
	Sessions []string

	frame   ui.Frame
	state   State
	dirty   bool
	notices chan chat.Message
}

// New assembles a Session from the resolved configuration.
func New(cfg *config.Config, t *term.Terminal) *Session {
	if t == nil {
		t = term.New(nil, nil)
	}
	return &Session{
		ID:      uuid.NewString(),
		Term:    t,
		Editor:  editor.New(cfg.InputCapacity),
		History: history.New(cfg.HistorySize),
		Chat:    chat.NewLog(0),
		Panels:  ui.NewPanels(),
		Log:     activitylog.Nop(),
		Output:  os.Stdout,
		frame: ui.Frame{
			Color:   !cfg.NoColor && ui.SupportsColor(),
			Unicode: ui.SupportsUnicode(),
			Theme:   ui.ThemeByName(cfg.Theme),
		},
		notices: make(chan chat.Message, 16),
	}
}

// StateNow returns the current lifecycle phase.
func (s *Session) StateNow() State { return s.state }

// Stop requests cooperative shutdown. The loop observes it at the top
// of its next iteration, so latency is bounded by one input poll.
func (s *Session) Stop() { s.state = StateStopped }

// Notify surfaces a line into the chat area. Loop-thread only; other
// goroutines must use Post.
func (s *Session) Notify(kind chat.Kind, text string) {
	s.Chat.Append(kind, text)
	s.Log.Notice(kind.Label(), text)
	s.dirty = true
}

// Post queues a chat line from another goroutine. The loop drains the
// queue each iteration. Posts beyond the queue bound are dropped
// rather than blocking the producer.
func (s *Session) Post(kind chat.Kind, text string) {
	select {
	case s.notices <- chat.Message{Kind: kind, Text: text}:
	default:
	}
}

// Dispatch applies one decoded key event to the session state.
func (s *Session) Dispatch(ev key.Event) {
	switch ev.Kind {
	case key.Rune:
		s.Editor.Insert(ev.Ch)
		s.dirty = true

	case key.Control:
		s.dispatchControl(ev.Ch)

	case key.ArrowUp:
		if entry, ok := s.History.Prev(); ok {
			s.Editor.Set(entry)
			s.dirty = true
		}

	case key.ArrowDown:
		browsing := s.History.Browsing()
		if entry, ok := s.History.Next(); ok {
			s.Editor.Set(entry)
			s.dirty = true
		} else if browsing {
			// Walked forward past the newest entry: back to a
			// blank line.
			s.Editor.Clear()
			s.dirty = true
		}

	case key.ArrowLeft:
		s.Editor.MoveLeft()
		s.dirty = true

	case key.ArrowRight:
		s.Editor.MoveRight()
		s.dirty = true

	case key.Delete:
		s.Editor.DeleteForward()
		s.dirty = true

	case key.Home:
		s.Editor.MoveHome()
		s.dirty = true

	case key.End:
		s.Editor.MoveEnd()
		s.dirty = true

	case key.Escape:
		s.Editor.MoveHome()
		s.dirty = true
	}
}

func (s *Session) dispatchControl(b byte) {
	switch b {
	case key.CtrlC, key.CtrlQ:
		s.state = StateStopped

	case key.CtrlH:
		s.Notify(chat.KindSystem,
			"Help: Enter sends, Up/Down recall history, Ctrl+N new branch, Ctrl+L redraw, Ctrl+Q quit. Lines starting with / are application commands.")

	case key.CtrlN:
		// Branch creation is owned by the branch manager; the core
		// only surfaces the notice.
		s.Notify(chat.KindSystem, "Created new branch")

	case key.CtrlL:
		s.redraw()
		s.dirty = false

	case key.Enter, key.LineFeed:
		s.submit()

	case key.Backspace:
		s.Editor.Backspace()
		s.dirty = true

	case key.CtrlA:
		s.Editor.MoveHome()
		s.dirty = true

	case key.CtrlE:
		s.Editor.MoveEnd()
		s.dirty = true

	case key.CtrlU:
		s.Editor.Clear()
		s.dirty = true
	}
}

// submit records a non-empty input line and hands it to the
// application. Empty submissions are ignored.
func (s *Session) submit() {
	text := s.Editor.String()
	if text == "" {
		return
	}
	s.History.Add(text)
	s.Chat.Append(chat.KindUser, text)
	s.Log.Submit(len(text))
	s.Editor.Clear()
	s.dirty = true
	if s.OnSubmit != nil {
		s.OnSubmit(text)
	}
}

// Frame returns the current render frame.
func (s *Session) Frame() ui.Frame { return s.frame }

// Dirty reports whether the screen is stale.
func (s *Session) Dirty() bool { return s.dirty }

func (s *Session) status() ui.Status {
	if s.Status != nil {
		return s.Status()
	}
	return ui.Status{Model: "none", Branch: "main"}
}

func (s *Session) errIfNotIdle() error {
	if s.state != StateIdle {
		return fmt.Errorf("session already started (state %d)", s.state)
	}
	return nil
}
