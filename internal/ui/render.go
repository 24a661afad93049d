package ui

import (
	"bytes"
	"fmt"
	"strings"

	"claw/internal/chat"
)

const ellipsis = "..."

// moveTo positions the cursor at 0-based column x, row y.
func moveTo(buf *bytes.Buffer, x, y int) {
	fmt.Fprintf(buf, "\033[%d;%dH", y+1, x+1)
}

// setColor emits an ANSI-256 foreground/background pair, or nothing
// when the frame has no color capability.
func setColor(buf *bytes.Buffer, f Frame, fg, bg int) {
	if !f.Color {
		return
	}
	fmt.Fprintf(buf, "\033[38;5;%dm\033[48;5;%dm", fg, bg)
}

func resetColor(buf *bytes.Buffer, f Frame) {
	if !f.Color {
		return
	}
	buf.WriteString("\033[0m")
}

// ClearScreen wipes the display and homes the cursor.
func ClearScreen(buf *bytes.Buffer) {
	buf.WriteString("\033[2J\033[H")
}

// truncate cuts s to width columns, suffixing the ellipsis marker. The
// marker's 3 columns are reserved out of the width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return string(r[:width])
	}
	return string(r[:width-len(ellipsis)]) + ellipsis
}

// glyphs is the box-drawing character set, with an ASCII fallback for
// terminals without UTF-8 output.
type glyphs struct {
	ul, ur, ll, lr, h, v string
}

func boxGlyphs(unicode bool) glyphs {
	if unicode {
		return glyphs{ul: "┌", ur: "┐", ll: "└", lr: "┘", h: "─", v: "│"}
	}
	return glyphs{ul: "+", ur: "+", ll: "+", lr: "+", h: "-", v: "|"}
}

// drawBox paints a bordered rectangle with an optional title embedded
// in the top border.
func drawBox(buf *bytes.Buffer, f Frame, x, y, w, h int, title string) {
	if w < 2 || h < 2 {
		return
	}
	g := boxGlyphs(f.Unicode)

	moveTo(buf, x, y)
	buf.WriteString(g.ul)
	buf.WriteString(strings.Repeat(g.h, w-2))
	buf.WriteString(g.ur)

	if title != "" {
		moveTo(buf, x+2, y)
		fmt.Fprintf(buf, " %s ", truncate(title, w-6))
	}

	for i := 1; i < h-1; i++ {
		moveTo(buf, x, y+i)
		buf.WriteString(g.v)
		moveTo(buf, x+w-1, y+i)
		buf.WriteString(g.v)
	}

	moveTo(buf, x, y+h-1)
	buf.WriteString(g.ll)
	buf.WriteString(strings.Repeat(g.h, w-2))
	buf.WriteString(g.lr)
}

// fillRow paints a full-width run of spaces at row y in the current
// colors.
func fillRow(buf *bytes.Buffer, f Frame, y int) {
	moveTo(buf, 0, y)
	buf.WriteString(strings.Repeat(" ", f.Width))
}

// DrawToolbar paints the key-hint bar across the top row.
func DrawToolbar(buf *bytes.Buffer, f Frame) {
	setColor(buf, f, f.Theme.Fg, f.Theme.Primary)
	fillRow(buf, f, 0)
	moveTo(buf, 1, 0)
	buf.WriteString(truncate("claw  |  Ctrl+H: Help  |  Ctrl+N: New branch  |  Ctrl+L: Redraw  |  Ctrl+Q: Quit", f.Width-2))
	resetColor(buf, f)
}

// DrawSidebar paints the session list down the left edge. active is an
// index into sessions; entries that do not fit are dropped.
func DrawSidebar(buf *bytes.Buffer, f Frame, sessions []string, active int) {
	h := f.Height - ToolbarHeight
	drawBox(buf, f, 0, ToolbarHeight, SidebarWidth, h, "Sessions")

	setColor(buf, f, f.Theme.Muted, f.Theme.Bg)
	for i, name := range sessions {
		row := ToolbarHeight + 2 + i
		if row >= ToolbarHeight+h-1 {
			break
		}
		moveTo(buf, 2, row)
		if i == active {
			setColor(buf, f, f.Theme.Primary, f.Theme.Bg)
			buf.WriteString(truncate("> "+name, SidebarWidth-4))
			setColor(buf, f, f.Theme.Muted, f.Theme.Bg)
		} else {
			buf.WriteString(truncate("  "+name, SidebarWidth-4))
		}
	}
	resetColor(buf, f)
}

// DrawChat paints the transcript into the chat panel, newest messages
// anchored to the bottom of the region.
func DrawChat(buf *bytes.Buffer, f Frame, log *chat.Log) {
	x, y, w, h := f.ChatArea()
	drawBox(buf, f, x, y, w, h, "")

	inner := h - 2
	if inner <= 0 {
		return
	}
	msgs := log.Tail(inner)

	setColor(buf, f, f.Theme.Fg, f.Theme.Bg)
	for i, m := range msgs {
		moveTo(buf, x+2, y+1+i)
		switch m.Kind {
		case chat.KindUser:
			setColor(buf, f, f.Theme.Secondary, f.Theme.Bg)
		case chat.KindAssistant:
			setColor(buf, f, f.Theme.Fg, f.Theme.Bg)
		default:
			setColor(buf, f, f.Theme.Muted, f.Theme.Bg)
		}
		buf.WriteString(truncate(m.Kind.Label()+": "+m.Text, w-4))
	}
	resetColor(buf, f)
}

// Status is the live state slice for the status bar. It is supplied by
// the agent collaborator, never hardcoded here.
type Status struct {
	Model  string
	Tokens int64
	Branch string
}

// DrawStatus paints the status bar above the input area.
func DrawStatus(buf *bytes.Buffer, f Frame, st Status) {
	y := f.Height - StatusHeight - InputHeight

	setColor(buf, f, 15, f.Theme.Primary)
	fillRow(buf, f, y)

	label := fmt.Sprintf(" Model: %s  |  Tokens: %s  |  Branch: %s ",
		st.Model, FormatTokens(st.Tokens), st.Branch)
	moveTo(buf, 1, y)
	buf.WriteString(truncate(label, f.Width-2))
	resetColor(buf, f)
}

// DrawInput paints the prompt and the editor snapshot, then parks the
// terminal cursor at the editor cursor. When the line is wider than
// the panel, a window around the cursor is shown.
func DrawInput(buf *bytes.Buffer, f Frame, line string, cursor int) {
	y := f.Height - InputHeight

	setColor(buf, f, f.Theme.Fg, f.Theme.Bg)
	for i := 0; i < InputHeight; i++ {
		fillRow(buf, f, y+i)
	}

	const prompt = " > "
	setColor(buf, f, f.Theme.Success, f.Theme.Bg)
	moveTo(buf, 0, y+1)
	buf.WriteString(prompt)

	maxInput := f.Width - len(prompt) - 1
	if maxInput < 1 {
		maxInput = 1
	}
	start := 0
	if cursor > maxInput {
		start = cursor - maxInput
	}
	visible := line[start:]
	if len(visible) > maxInput {
		visible = visible[:maxInput]
	}

	setColor(buf, f, f.Theme.Fg, f.Theme.Bg)
	buf.WriteString(visible)
	resetColor(buf, f)

	moveTo(buf, len(prompt)+cursor-start, y+1)
}

// FormatTokens renders a token count compactly (e.g. "6k", "1.2M").
func FormatTokens(n int64) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 10000:
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	case n < 1000000:
		return fmt.Sprintf("%dk", n/1000)
	case n < 10000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	default:
		return fmt.Sprintf("%dM", n/1000000)
	}
}
