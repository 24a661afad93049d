package key

import "io"

// Decoder turns the byte stream of a raw-mode terminal into Events.
//
// The reader is expected to have polling semantics: a read that finds
// no data within its timeout returns (0, nil) or io.EOF rather than
// blocking. This is what lets an ESC at the end of input degrade to a
// bare Escape event instead of hanging on the rest of a sequence.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a Decoder over r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Poll reads one key press. ok is false when the read window expired
// with no input.
func (d *Decoder) Poll() (ev Event, ok bool) {
	b, ok := d.readByte()
	if !ok {
		return Event{}, false
	}
	return d.decode(b), true
}

// decode classifies a byte, consuming up to three further bytes for
// escape sequences. This is a deliberate subset of terminal escape
// parsing: enough for arrows, home/end, and delete.
func (d *Decoder) decode(b byte) Event {
	if b != esc {
		if b < 0x20 || b == Backspace {
			return Event{Kind: Control, Ch: b}
		}
		return Event{Kind: Rune, Ch: b}
	}

	first, ok := d.readByte()
	if !ok {
		return Event{Kind: Escape}
	}
	second, ok := d.readByte()
	if !ok {
		return Event{Kind: Escape}
	}
	if first != '[' {
		return Event{Kind: Unknown}
	}

	switch second {
	case 'A':
		return Event{Kind: ArrowUp}
	case 'B':
		return Event{Kind: ArrowDown}
	case 'C':
		return Event{Kind: ArrowRight}
	case 'D':
		return Event{Kind: ArrowLeft}
	case 'H':
		return Event{Kind: Home}
	case 'F':
		return Event{Kind: End}
	case '3':
		// Delete arrives as ESC [ 3 ~. Consume the tilde.
		if t, ok := d.readByte(); ok && t == '~' {
			return Event{Kind: Delete}
		}
		return Event{Kind: Unknown}
	}
	return Event{Kind: Unknown}
}

// readByte reads a single byte. ok is false on timeout or error.
func (d *Decoder) readByte() (byte, bool) {
	var p [1]byte
	n, _ := d.r.Read(p[:])
	if n != 1 {
		return 0, false
	}
	return p[0], true
}
