// Package ui paints the fixed five-panel layout with direct cursor
// addressing. Draw functions are stateless: every redraw recomputes
// each region from the frame dimensions and the state passed in.
package ui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Theme holds the ANSI-256 color slots used by the panels.
type Theme struct {
	Bg        int
	Fg        int
	Primary   int
	Secondary int
	Success   int
	Warning   int
	Error     int
	Muted     int
	Bold      bool
}

// DefaultTheme is the dark-background palette.
func DefaultTheme() Theme {
	return Theme{
		Bg:        0,
		Fg:        7,
		Primary:   4, // blue
		Secondary: 6, // cyan
		Success:   2, // green
		Warning:   3, // yellow
		Error:     1, // red
		Muted:     8, // gray
		Bold:      true,
	}
}

// DarkTheme is an alias for the default palette.
func DarkTheme() Theme { return DefaultTheme() }

// LightTheme inverts the foreground/background slots for light terminals.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Bg = 15
	t.Fg = 0
	return t
}

// ThemeByName resolves a configured theme name, defaulting to the dark
// palette for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}

// SupportsColor reports whether the attached terminal can render ANSI
// colors. Detection runs against the real terminal, so it must be
// called before entering raw mode.
func SupportsColor() bool {
	return termenv.NewOutput(os.Stdout).ColorProfile() != termenv.Ascii
}

// SupportsUnicode reports whether the locale advertises UTF-8 output,
// which gates the box-drawing glyph set.
func SupportsUnicode() bool {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if val := os.Getenv(v); val != "" {
			return strings.Contains(strings.ToUpper(val), "UTF-8") ||
				strings.Contains(strings.ToUpper(val), "UTF8")
		}
	}
	return false
}
