package session

import (
	"bytes"
	"os"
	"os/signal"
	"syscall"

	"claw/internal/key"
	"claw/internal/ui"
)

// Run enters raw mode and drives the poll/decode/dispatch/redraw loop
// until Stop. Terminal restoration is attempted on every exit path.
func (s *Session) Run() error {
	if err := s.errIfNotIdle(); err != nil {
		return err
	}
	if err := s.Term.EnterRaw(); err != nil {
		return err
	}
	defer s.Term.Restore()
	s.state = StateRunning

	// Resize notifications arrive on a channel polled each iteration;
	// no rendering or allocation happens in signal context.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	s.refreshSize()
	s.Log.SessionStart(s.status().Model, s.frame.Width, s.frame.Height)

	dec := key.NewDecoder(s.Term)

	s.redraw()
	s.dirty = false

	for s.state == StateRunning {
		s.drain(winch)
		if s.dirty {
			s.redraw()
			s.dirty = false
		}
		if ev, ok := dec.Poll(); ok {
			s.Dispatch(ev)
		}
	}

	s.Log.SessionStop(s.status().Tokens)
	return nil
}

// drain consumes pending resize signals and queued notices without
// blocking.
func (s *Session) drain(winch <-chan os.Signal) {
	for {
		select {
		case <-winch:
			s.refreshSize()
			s.Log.Resize(s.frame.Width, s.frame.Height)
			s.dirty = true
		case m := <-s.notices:
			s.Chat.Append(m.Kind, m.Text)
			s.dirty = true
		default:
			return
		}
	}
}

func (s *Session) refreshSize() {
	cols, rows := s.Term.Size()
	s.frame.Width = cols
	s.frame.Height = rows
}

// redraw repaints every visible panel from scratch.
func (s *Session) redraw() {
	if s.frame.Height < ui.MinRows {
		return
	}
	var buf bytes.Buffer
	ui.ClearScreen(&buf)

	if s.Panels[ui.PanelToolbar].Visible {
		ui.DrawToolbar(&buf, s.frame)
	}
	if s.Panels[ui.PanelSidebar].Visible {
		ui.DrawSidebar(&buf, s.frame, s.sidebar(), 0)
	}
	if s.Panels[ui.PanelChat].Visible {
		ui.DrawChat(&buf, s.frame, s.Chat)
	}
	if s.Panels[ui.PanelStatus].Visible {
		ui.DrawStatus(&buf, s.frame, s.status())
	}
	if s.Panels[ui.PanelInput].Visible {
		ui.DrawInput(&buf, s.frame, s.Editor.String(), s.Editor.Pos())
	}

	s.Output.Write(buf.Bytes())
}

func (s *Session) sidebar() []string {
	if len(s.Sessions) > 0 {
		return s.Sessions
	}
	return []string{"main"}
}
