package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers popupContent on a blank screen of the given size.
// Content taller than the screen is cut from the bottom starting at
// scrollOffset.
func (pr *PopupRenderer) RenderPopup(popupContent string, scrollOffset, height, width int, popupStyle lipgloss.Style) string {
	visible := height - popupStyle.GetVerticalFrameSize()
	if visible < 3 {
		visible = 3
	}
	lines := strings.Split(popupContent, "\n")
	lines = scrollWindow(lines, scrollOffset, visible, pr.styles.Dim)

	styled := popupStyle.Render(strings.Join(lines, "\n"))
	if width <= 0 || height <= 0 {
		return styled
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled)
}

// scrollWindow returns at most visible lines starting at offset, replacing the
// first and last line with markers when content is hidden
func scrollWindow(lines []string, offset, visible int, marker lipgloss.Style) []string {
	total := len(lines)
	if total <= visible {
		return lines
	}
	maxOffset := total - visible
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	window := append([]string(nil), lines[offset:offset+visible]...)
	if offset > 0 {
		window[0] = marker.Render("↑ (more above)")
	}
	if offset+visible < total {
		window[len(window)-1] = marker.Render("↓ (more below)")
	}
	return window
}
