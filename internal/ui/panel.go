package ui

// PanelKind identifies one of the five fixed screen regions.
type PanelKind int

const (
	PanelToolbar PanelKind = iota
	PanelSidebar
	PanelChat
	PanelStatus
	PanelInput
)

// Panel is a logical region with a visibility flag. All five panels
// exist for the lifetime of a session; visibility is an extension
// point, not exercised by the current layout.
type Panel struct {
	Kind    PanelKind
	Visible bool
}

// NewPanels builds the panel set keyed by kind.
func NewPanels() map[PanelKind]*Panel {
	panels := make(map[PanelKind]*Panel, 5)
	for _, k := range []PanelKind{PanelToolbar, PanelSidebar, PanelChat, PanelStatus, PanelInput} {
		panels[k] = &Panel{Kind: k, Visible: true}
	}
	return panels
}

// Fixed layout geometry. The chat panel fills whatever the reserved
// rows and the sidebar leave over.
const (
	SidebarWidth  = 25
	ToolbarHeight = 1
	StatusHeight  = 1
	InputHeight   = 3
)

// MinRows is the smallest terminal height the layout can draw into.
const MinRows = ToolbarHeight + StatusHeight + InputHeight + 2

// Frame carries the resolved render context for one redraw pass.
type Frame struct {
	Width   int
	Height  int
	Color   bool
	Unicode bool
	Theme   Theme
}

// ChatArea returns the chat panel rectangle for the frame.
func (f Frame) ChatArea() (x, y, w, h int) {
	x = SidebarWidth
	y = ToolbarHeight
	w = f.Width - SidebarWidth
	h = f.Height - ToolbarHeight - StatusHeight - InputHeight
	return x, y, w, h
}
