// Package key decodes raw terminal bytes into logical key events.
package key

import "fmt"

// Kind identifies the variant of an Event.
type Kind int

const (
	// Rune is a plain printable character.
	Rune Kind = iota
	// Control is a control character (byte < 0x20 or DEL).
	Control
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	Delete
	Home
	End
	// Escape is a bare ESC press (no sequence followed within the
	// polling window).
	Escape
	// Unknown is an escape sequence this decoder does not map.
	Unknown
)

// Event is one decoded key press. Ch is meaningful only for Rune and
// Control events.
type Event struct {
	Kind Kind
	Ch   byte
}

// Well-known control bytes the session loop dispatches on.
const (
	CtrlA     = 0x01
	CtrlC     = 0x03
	CtrlE     = 0x05
	CtrlH     = 0x08
	CtrlL     = 0x0C
	CtrlN     = 0x0E
	CtrlQ     = 0x11
	CtrlU     = 0x15
	Enter     = 0x0D
	LineFeed  = 0x0A
	Backspace = 0x7F
	esc       = 0x1B
)

func (e Event) String() string {
	switch e.Kind {
	case Rune:
		return fmt.Sprintf("%q", e.Ch)
	case Control:
		return fmt.Sprintf("0x%02x", e.Ch)
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case Delete:
		return "delete"
	case Home:
		return "home"
	case End:
		return "end"
	case Escape:
		return "esc"
	}
	return "unknown"
}
