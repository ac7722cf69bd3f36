package views

import "doxa/internal/plan"

const (
	headerLines = 2 // title line and a blank line
	footerLines = 3 // status, prompt, key help
	minBody     = 8
)

// Layout is the pane geometry shared by the renderer and mouse hit testing.
// Library results and songs take two lines each; gifts and announcements
// take one.
type Layout struct {
	Width  int
	Height int
}

// LeftWidth is the width of the library column
func (l Layout) LeftWidth() int {
	w := l.Width * 2 / 5
	if w < 24 {
		w = 24
	}
	if w > l.Width {
		w = l.Width
	}
	return w
}

// RightWidth is the width of the plan column
func (l Layout) RightWidth() int {
	if r := l.Width - l.LeftWidth(); r > 0 {
		return r
	}
	return 0
}

func (l Layout) bodyLines() int {
	if b := l.Height - headerLines - footerLines; b > minBody {
		return b
	}
	return minBody
}

// LibraryRows is the number of results shown at once
func (l Layout) LibraryRows() int {
	return atLeastOne((l.bodyLines() - 1) / 2)
}

// SongRows is the number of selected songs shown at once
func (l Layout) SongRows() int {
	return atLeastOne(l.LibraryRows() / 2)
}

// NoteRows is the number of gifts, and separately announcements, shown at once
func (l Layout) NoteRows() int {
	// songs title, song rows, then a blank line and a title for each note pane
	rest := l.bodyLines() - 1 - 2*l.SongRows() - 4
	return atLeastOne(rest / 2)
}

// SongsTop is the screen row of the first song
func (l Layout) SongsTop() int {
	return headerLines + 1
}

// SongRowRect returns the vertical extent of the song drawn in visible slot
// row, measured in screen rows
func (l Layout) SongRowRect(row int) plan.Rect {
	top := float64(l.SongsTop() + 2*row)
	return plan.Rect{Top: top, Bottom: top + 2}
}

// SongAt maps a screen cell to the index of the song drawn there
func (l Layout) SongAt(x, y, offset, count int) (int, bool) {
	if x < l.LeftWidth() || y < l.SongsTop() {
		return 0, false
	}
	row := (y - l.SongsTop()) / 2
	if row >= l.SongRows() {
		return 0, false
	}
	i := offset + row
	if i >= count {
		return 0, false
	}
	return i, true
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
