package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeEditContent
	ModeServiceName
	ModeServiceDate
	ModeConfirmRemove
)

// Pane identifies one of the planner panes
type Pane int

const (
	PaneLibrary Pane = iota
	PaneSongs
	PaneGifts
	PaneAnnouncements
)

// Panes lists the panes in tab order
var Panes = []Pane{PaneLibrary, PaneSongs, PaneGifts, PaneAnnouncements}

func (p Pane) String() string {
	switch p {
	case PaneLibrary:
		return "Library"
	case PaneSongs:
		return "Songs"
	case PaneGifts:
		return "Spiritual Gifts"
	case PaneAnnouncements:
		return "Announcements"
	}
	return "Unknown"
}

// Next returns the pane after p in tab order, wrapping around
func (p Pane) Next() Pane {
	return Panes[(int(p)+1)%len(Panes)]
}

// Prev returns the pane before p in tab order, wrapping around
func (p Pane) Prev() Pane {
	return Panes[(int(p)+len(Panes)-1)%len(Panes)]
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedPane() Pane
	CurrentIndex() int
	TotalItems() int
	Query() string
	// CurrentContent is the text of the highlighted gift or announcement
	CurrentContent() string
	ServiceName() string
	ServiceDate() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
