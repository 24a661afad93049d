package term

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/creack/pty"
)

// --- Restore without EnterRaw ---

func TestRestore_NeverEntered(t *testing.T) {
	var out bytes.Buffer
	tm := New(os.Stdin, &out)
	tm.Restore()
	tm.Restore()
	if out.Len() != 0 {
		t.Fatalf("expected no output from no-op restore, got %q", out.String())
	}
	if tm.Raw() {
		t.Fatalf("expected raw=false")
	}
}

// --- EnterRaw on a non-terminal ---

func TestEnterRaw_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	tm := New(r, &out)
	err = tm.EnterRaw()
	if err == nil {
		tm.Restore()
		t.Fatalf("expected error entering raw mode on a pipe")
	}
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no terminal writes on failure, got %q", out.String())
	}
}

// --- Raw-mode round trip against a pty ---

func TestEnterRaw_RoundTrip(t *testing.T) {
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	var out bytes.Buffer
	tm := New(pts, &out)

	if err := tm.EnterRaw(); err != nil {
		t.Fatalf("EnterRaw: %v", err)
	}
	if !tm.Raw() {
		t.Fatalf("expected raw=true after EnterRaw")
	}
	if !bytes.Contains(out.Bytes(), []byte("\033[?25l")) {
		t.Fatalf("expected cursor-hide on entry, got %q", out.String())
	}

	tm.Restore()
	if tm.Raw() {
		t.Fatalf("expected raw=false after Restore")
	}
	if !bytes.Contains(out.Bytes(), []byte("\033[?25h")) {
		t.Fatalf("expected cursor-show on restore, got %q", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("\033[0m")) {
		t.Fatalf("expected color reset on restore, got %q", out.String())
	}

	// Second restore is a no-op.
	before := out.Len()
	tm.Restore()
	if out.Len() != before {
		t.Fatalf("expected idempotent restore, got extra output %q", out.String()[before:])
	}
}

// --- Size fallback ---

func TestSize_FallbackOnNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	tm := New(r, nil)
	cols, rows := tm.Size()
	if cols != 80 || rows != 24 {
		t.Fatalf("expected 80x24 fallback, got %dx%d", cols, rows)
	}
}

func TestSize_FromPty(t *testing.T) {
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	if err := pty.Setsize(ptm, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Skipf("cannot set pty size: %v", err)
	}

	tm := New(pts, nil)
	cols, rows := tm.Size()
	if cols != 100 || rows != 30 {
		t.Fatalf("expected 100x30, got %dx%d", cols, rows)
	}
}
