// Package term owns exclusive raw-mode control of the terminal device.
//
// Once entered, raw mode is always paired with exactly one restoration
// before the process exits: Restore is idempotent and safe to call on
// every shutdown path, including error paths.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input device does not support
// terminal attribute introspection (e.g. stdin is a pipe).
var ErrNotTerminal = errors.New("not a terminal")

const (
	cursorHide = "\033[?25l"
	cursorShow = "\033[?25h"
	colorReset = "\033[0m"

	defaultCols = 80
	defaultRows = 24
)

// Terminal manages raw-mode lifecycle for one tty.
type Terminal struct {
	in      *os.File
	out     io.Writer
	restore *term.State // snapshot of the original attributes
	raw     bool
}

// New creates a Terminal over the given input device and output writer.
// Passing nil selects stdin/stdout.
func New(in *os.File, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{in: in, out: out}
}

// Fd returns the input file descriptor.
func (t *Terminal) Fd() int { return int(t.in.Fd()) }

// Read reads from the input device. In raw mode a read blocks for at
// most pollTimeout before returning with no data.
func (t *Terminal) Read(p []byte) (int, error) { return t.in.Read(p) }

// EnterRaw captures the current terminal attributes and switches the
// device into raw mode with timeout-bounded reads (VMIN=0, VTIME=1, so
// a read returns empty after ~100ms instead of blocking). It also
// hides the cursor.
func (t *Terminal) EnterRaw() error {
	fd := t.Fd()
	if !term.IsTerminal(fd) {
		return fmt.Errorf("fd %d: %w", fd, ErrNotTerminal)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	t.restore = state
	t.raw = true

	// MakeRaw leaves reads fully blocking (VMIN=1). The session loop
	// needs bounded polling so it can observe resize and stop requests.
	if err := setPollTimeout(fd); err != nil {
		t.Restore()
		return fmt.Errorf("set read timeout: %w", err)
	}

	io.WriteString(t.out, cursorHide)
	return nil
}

// Restore reapplies the attributes captured by EnterRaw, shows the
// cursor, and resets colors. Calling it without a prior EnterRaw, or
// calling it more than once, is a no-op. Attribute restoration failure
// is ignored: there is no recovery beyond attempting it.
func (t *Terminal) Restore() {
	if !t.raw {
		return
	}
	t.raw = false
	term.Restore(t.Fd(), t.restore)
	io.WriteString(t.out, cursorShow+colorReset+"\r\n")
}

// Raw reports whether the terminal is currently in raw mode.
func (t *Terminal) Raw() bool { return t.raw }

// Size returns the terminal dimensions, falling back to 80x24 when the
// device cannot report them.
func (t *Terminal) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(t.Fd())
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}
