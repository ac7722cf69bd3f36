package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Service       lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Unsaved       lipgloss.Style
	Prompt        lipgloss.Style
	PaneTitle     lipgloss.Style
	PaneTitleDim  lipgloss.Style
	Help          lipgloss.Style
	InfoBox       lipgloss.Style
	PreviewBox    lipgloss.Style
	Highlight     lipgloss.Style
	Cursor        lipgloss.Style
	CursorDim     lipgloss.Style
	Dragging      lipgloss.Style
	GiftType      lipgloss.Style
	Theme         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Service:       lipgloss.NewStyle().Bold(true),
		Confirm:       lipgloss.NewStyle().Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Unsaved:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PaneTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		PaneTitleDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:          lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CursorDim: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Dragging:  lipgloss.NewStyle().Background(lipgloss.Color("33")),
		GiftType:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("177")),
		Theme:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// ThemeColor returns the accent color used for a song theme
func ThemeColor(theme string) string {
	switch theme {
	case "Hymn":
		return "78" // green
	case "Contemporary":
		return "33" // blue
	default:
		return "214" // yellow
	}
}
