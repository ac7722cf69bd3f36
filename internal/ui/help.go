package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"doxa/internal/ui/viewmodels"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys viewmodels.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys viewmodels.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Render builds the help screen from the key map
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := r.keys.Sections()

	keyWidth := 0
	for _, section := range sections {
		for _, b := range section.Bindings {
			if w := lipgloss.Width(b.Help().Key); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("doxa help"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.Title))
		help.WriteString("\n")
		for _, b := range section.Bindings {
			h := b.Help()
			padding := strings.Repeat(" ", keyWidth-lipgloss.Width(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(h.Key), padding, descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  esc or ? closes this screen"))
	return help.String()
}
