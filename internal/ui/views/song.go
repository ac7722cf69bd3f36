package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"doxa/internal/domain"
	"doxa/internal/plan"
)

// SongRenderer handles rendering of song entries
type SongRenderer struct {
	styles *Styles
}

// NewSongRenderer creates a new song renderer
func NewSongRenderer(styles *Styles) *SongRenderer {
	return &SongRenderer{styles: styles}
}

// SongRow describes how one song entry is drawn
type SongRow struct {
	Position int // 1-based slot in the service, 0 for library results
	Cursor   bool
	Focused  bool
	Dragging bool
	Query    string
	Width    int
}

// RenderSong renders a song as two lines: title and details
func (r *SongRenderer) RenderSong(song domain.Song, row SongRow) []string {
	marker := "  "
	if row.Cursor {
		marker = "> "
	}
	if row.Dragging {
		marker = "≡ "
	}

	title := song.Title
	if song.Number != "" {
		title = fmt.Sprintf("%s (#%s)", title, song.Number)
	}
	if row.Position > 0 {
		title = fmt.Sprintf("%d. %s", row.Position, title)
	}
	title = truncate(title, row.Width-len(marker))

	first := marker + highlightMatch(title, row.Query, r.styles.Highlight)
	second := "    " + r.details(song, row.Width-4)

	if bg, ok := r.background(row); ok {
		first = bg.Render(padRight(first, row.Width))
		second = bg.Render(padRight(second, row.Width))
	}
	return []string{first, second}
}

func (r *SongRenderer) background(row SongRow) (lipgloss.Style, bool) {
	switch {
	case row.Dragging:
		return r.styles.Dragging, true
	case row.Cursor && row.Focused:
		return r.styles.Cursor, true
	case row.Cursor:
		return r.styles.CursorDim, true
	}
	return lipgloss.Style{}, false
}

func (r *SongRenderer) details(song domain.Song, width int) string {
	played := "never played"
	if song.LastPlayed != nil {
		played = "last played " + song.LastPlayed.Format("2006-01-02")
	}
	text := fmt.Sprintf("%s · %s · %d× last month", song.Theme, played, song.TimesPlayedLastMonth)
	text = truncate(text, width)

	// color only the theme part
	theme := truncate(song.Theme, width)
	rest := strings.TrimPrefix(text, theme)
	themeStyle := r.styles.Theme.Foreground(lipgloss.Color(ThemeColor(song.Theme)))
	return themeStyle.Render(theme) + r.styles.Dim.Render(rest)
}

// highlightMatch highlights the first occurrence of query, folded the same
// way the library filter folds it
func highlightMatch(text, query string, style lipgloss.Style) string {
	start, end, ok := plan.MatchSpan(text, query)
	if !ok {
		return text
	}
	return text[:start] + style.Render(text[start:end]) + text[end:]
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// padRight pads s with spaces to width cells
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
