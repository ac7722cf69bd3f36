package viewmodels

import (
	"github.com/charmbracelet/bubbles/key"

	"doxa/internal/ui/input/types"
)

// KeyMap describes the normal-mode bindings for the footer and help screen.
// Dispatch itself happens in the input modes.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	NextPane   key.Binding
	FocusPane  key.Binding
	Search     key.Binding
	Add        key.Binding
	Remove     key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Drag       key.Binding
	New        key.Binding
	Edit       key.Binding
	GiftType   key.Binding
	Name       key.Binding
	Date       key.Binding
	Export     key.Binding
	Preview    key.Binding
	Save       key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
	CancelText key.Binding
	SubmitText key.Binding
}

// DefaultKeyMap returns the bindings handled by the normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("gg/home", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
		NextPane:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next pane")),
		FocusPane:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to pane")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:        key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter/a", "add song")),
		Remove:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		MoveUp:     key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Drag:       key.NewBinding(key.WithKeys(), key.WithHelp("mouse", "drag to reorder")),
		New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		GiftType:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle type")),
		Name:       key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "service name")),
		Date:       key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "service date")),
		Export:     key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export")),
		Preview:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload catalog")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		CancelText: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SubmitText: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
	}
}

// ForPane returns the short footer bindings for the focused pane
func (k KeyMap) ForPane(pane types.Pane) []key.Binding {
	switch pane {
	case types.PaneLibrary:
		return []key.Binding{k.Search, k.Add, k.NextPane, k.Help, k.Quit}
	case types.PaneSongs:
		return []key.Binding{k.MoveUp, k.MoveDown, k.Remove, k.NextPane, k.Help, k.Quit}
	case types.PaneGifts:
		return []key.Binding{k.New, k.Edit, k.GiftType, k.Remove, k.NextPane, k.Help}
	case types.PaneAnnouncements:
		return []key.Binding{k.New, k.Edit, k.Remove, k.NextPane, k.Help}
	}
	return []key.Binding{k.Help, k.Quit}
}

// ForMode returns the footer bindings while a text or confirm mode is active
func (k KeyMap) ForMode(mode types.Mode) []key.Binding {
	switch mode {
	case types.ModeSearch:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add highlighted")),
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
			k.CancelText,
		}
	case types.ModeConfirmRemove:
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "remove")),
			key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep")),
		}
	}
	return []key.Binding{k.SubmitText, k.CancelText}
}

// HelpSection is a titled group of bindings for the help screen
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// Sections returns every binding grouped for the help screen
func (k KeyMap) Sections() []HelpSection {
	return []HelpSection{
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.NextPane, k.FocusPane}},
		{Title: "Library", Bindings: []key.Binding{k.Search, k.Add, k.Reload}},
		{Title: "Songs", Bindings: []key.Binding{k.MoveUp, k.MoveDown, k.Drag, k.Remove}},
		{Title: "Gifts & Announcements", Bindings: []key.Binding{k.New, k.Edit, k.GiftType, k.Remove}},
		{Title: "Service", Bindings: []key.Binding{k.Name, k.Date, k.Save, k.Export, k.Preview}},
		{Title: "Other", Bindings: []key.Binding{k.Help, k.Quit}},
	}
}
