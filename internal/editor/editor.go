// Package editor implements an in-place line-editing buffer.
//
// All operations are total: boundary conditions (full buffer, cursor at
// an edge) are absorbed as no-ops rather than surfaced as errors, so a
// stray keystroke never interrupts the user. Nothing allocates after
// construction.
package editor

// Editor is a fixed-capacity character buffer with a cursor.
// Invariants: 0 <= pos <= length <= cap(buf)-1. One slot is reserved so
// length never reaches full capacity.
type Editor struct {
	buf    []byte
	length int
	pos    int
}

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 1024

// New creates an Editor holding at most capacity-1 bytes.
func New(capacity int) *Editor {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Editor{buf: make([]byte, capacity)}
}

// Insert writes c at the cursor, shifting the tail right. No-op when
// the buffer is full.
func (e *Editor) Insert(c byte) {
	if e.length >= len(e.buf)-1 {
		return
	}
	copy(e.buf[e.pos+1:e.length+1], e.buf[e.pos:e.length])
	e.buf[e.pos] = c
	e.length++
	e.pos++
}

// Backspace removes the byte before the cursor. No-op at position 0.
func (e *Editor) Backspace() {
	if e.pos == 0 {
		return
	}
	copy(e.buf[e.pos-1:e.length-1], e.buf[e.pos:e.length])
	e.length--
	e.pos--
}

// DeleteForward removes the byte under the cursor. No-op at end of line.
func (e *Editor) DeleteForward() {
	if e.pos >= e.length {
		return
	}
	copy(e.buf[e.pos:e.length-1], e.buf[e.pos+1:e.length])
	e.length--
}

// MoveLeft moves the cursor one position left, clamped at 0.
func (e *Editor) MoveLeft() {
	if e.pos > 0 {
		e.pos--
	}
}

// MoveRight moves the cursor one position right, clamped at the length.
func (e *Editor) MoveRight() {
	if e.pos < e.length {
		e.pos++
	}
}

// MoveHome moves the cursor to the start of the line.
func (e *Editor) MoveHome() { e.pos = 0 }

// MoveEnd moves the cursor past the last byte.
func (e *Editor) MoveEnd() { e.pos = e.length }

// Clear empties the buffer and resets the cursor.
func (e *Editor) Clear() {
	e.length = 0
	e.pos = 0
}

// Set replaces the buffer contents with s, truncating to capacity, and
// places the cursor at end of line. Used when recalling history.
func (e *Editor) Set(s string) {
	n := copy(e.buf[:len(e.buf)-1], s)
	e.length = n
	e.pos = n
}

// String returns the current contents.
func (e *Editor) String() string { return string(e.buf[:e.length]) }

// Len returns the number of bytes in the buffer.
func (e *Editor) Len() int { return e.length }

// Pos returns the cursor position.
func (e *Editor) Pos() int { return e.pos }
