package views

import (
	"fmt"
	"strings"

	"doxa/internal/domain"
)

// PaneRenderer renders pane titles and the one-line note entries
type PaneRenderer struct {
	styles *Styles
}

// NewPaneRenderer creates a new pane renderer
func NewPaneRenderer(styles *Styles) *PaneRenderer {
	return &PaneRenderer{styles: styles}
}

// RenderTitle renders a pane title with its entry count
func (p *PaneRenderer) RenderTitle(title string, count int, focused bool, suffix string) string {
	text := fmt.Sprintf("%s (%d)", title, count)
	if focused {
		text = p.styles.PaneTitle.Render("▌" + text)
	} else {
		text = p.styles.PaneTitleDim.Render(" " + text)
	}
	if suffix != "" {
		text += " " + suffix
	}
	return text
}

// RenderGift renders one spiritual gift on a single line
func (p *PaneRenderer) RenderGift(g domain.SpiritualGift, cursor, focused bool, width int) string {
	label := "[" + string(g.Type) + "] "
	body := firstLine(g.Content)
	if body == "" {
		body = "(empty)"
	}
	line := cursorMarker(cursor) + p.styles.GiftType.Render(label) + truncate(body, width-2-len(label))
	return p.withCursor(line, cursor, focused, width)
}

// RenderAnnouncement renders one announcement on a single line
func (p *PaneRenderer) RenderAnnouncement(a domain.Announcement, cursor, focused bool, width int) string {
	body := firstLine(a.Content)
	if body == "" {
		body = "(empty)"
	}
	line := cursorMarker(cursor) + "• " + truncate(body, width-4)
	return p.withCursor(line, cursor, focused, width)
}

// RenderEmpty renders a placeholder line for an empty pane
func (p *PaneRenderer) RenderEmpty(text string) string {
	return "  " + p.styles.Dim.Render(text)
}

func (p *PaneRenderer) withCursor(line string, cursor, focused bool, width int) string {
	if !cursor {
		return line
	}
	if focused {
		return p.styles.Cursor.Render(padRight(line, width))
	}
	return p.styles.CursorDim.Render(padRight(line, width))
}

func cursorMarker(cursor bool) string {
	if cursor {
		return "> "
	}
	return "  "
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
