package state

import (
	"doxa/internal/ui/input/types"
)

// AppState contains the UI-side state that is not part of the plan itself
type AppState struct {
	Focus   types.Pane
	cursors map[types.Pane]int
	offsets map[types.Pane]int
	rows    map[types.Pane]int

	Loading       bool // catalog load in progress
	CatalogLoaded bool
	Dirty         bool // plan changed since last save

	ShowHelp       bool
	ShowPreview    bool
	PreviewContent string
	InPagerMode    bool

	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focus:   types.PaneLibrary,
		cursors: make(map[types.Pane]int),
		offsets: make(map[types.Pane]int),
		rows:    make(map[types.Pane]int),
		Loading: true,
	}
}

// Cursor returns the highlighted index of pane
func (s *AppState) Cursor(p types.Pane) int {
	return s.cursors[p]
}

// Offset returns the first visible index of pane
func (s *AppState) Offset(p types.Pane) int {
	return s.offsets[p]
}

// SetRows records how many entries of pane fit on screen
func (s *AppState) SetRows(p types.Pane, n int) {
	s.rows[p] = n
	s.ensureVisible(p)
}

// Rows returns how many entries of pane fit on screen
func (s *AppState) Rows(p types.Pane) int {
	if n := s.rows[p]; n > 0 {
		return n
	}
	return 10
}

// SetCursor moves the cursor of pane to i, clamped to [0, total)
func (s *AppState) SetCursor(p types.Pane, i, total int) {
	if i >= total {
		i = total - 1
	}
	if i < 0 {
		i = 0
	}
	s.cursors[p] = i
	s.ensureVisible(p)
}

// MoveCursor shifts the cursor of pane by delta
func (s *AppState) MoveCursor(p types.Pane, delta, total int) {
	s.SetCursor(p, s.cursors[p]+delta, total)
}

// ClampCursor keeps the cursor valid after the pane shrank
func (s *AppState) ClampCursor(p types.Pane, total int) {
	s.SetCursor(p, s.cursors[p], total)
}

// ensureVisible scrolls pane so its cursor is inside the visible rows
func (s *AppState) ensureVisible(p types.Pane) {
	rows := s.Rows(p)
	cursor := s.cursors[p]
	offset := s.offsets[p]
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	if offset < 0 {
		offset = 0
	}
	s.offsets[p] = offset
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
