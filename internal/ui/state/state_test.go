package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doxa/internal/ui/input/types"
)

func TestNewAppStateStartsLoading(t *testing.T) {
	s := NewAppState()
	assert.True(t, s.Loading)
	assert.Equal(t, types.PaneLibrary, s.Focus)
	assert.Equal(t, 10, s.Rows(types.PaneSongs))
}

func TestSetCursorClamps(t *testing.T) {
	s := NewAppState()

	s.SetCursor(types.PaneSongs, 7, 3)
	assert.Equal(t, 2, s.Cursor(types.PaneSongs))

	s.SetCursor(types.PaneSongs, -4, 3)
	assert.Equal(t, 0, s.Cursor(types.PaneSongs))

	s.SetCursor(types.PaneSongs, 1, 0)
	assert.Equal(t, 0, s.Cursor(types.PaneSongs), "empty pane keeps cursor at zero")
}

func TestCursorsArePerPane(t *testing.T) {
	s := NewAppState()
	s.SetCursor(types.PaneSongs, 2, 5)
	s.SetCursor(types.PaneGifts, 1, 5)

	assert.Equal(t, 2, s.Cursor(types.PaneSongs))
	assert.Equal(t, 1, s.Cursor(types.PaneGifts))
	assert.Equal(t, 0, s.Cursor(types.PaneLibrary))
}

func TestScrollFollowsCursor(t *testing.T) {
	s := NewAppState()
	s.SetRows(types.PaneLibrary, 3)

	s.SetCursor(types.PaneLibrary, 5, 10)
	assert.Equal(t, 3, s.Offset(types.PaneLibrary))

	s.MoveCursor(types.PaneLibrary, -1, 10)
	assert.Equal(t, 3, s.Offset(types.PaneLibrary), "still visible")

	s.SetCursor(types.PaneLibrary, 0, 10)
	assert.Equal(t, 0, s.Offset(types.PaneLibrary))
}

func TestClampAfterShrink(t *testing.T) {
	s := NewAppState()
	s.SetCursor(types.PaneAnnouncements, 4, 5)
	s.ClampCursor(types.PaneAnnouncements, 2)
	assert.Equal(t, 1, s.Cursor(types.PaneAnnouncements))
}

func TestStatus(t *testing.T) {
	s := NewAppState()
	s.SetError("boom")
	assert.True(t, s.StatusIsError)

	s.SetStatus("ok")
	assert.False(t, s.StatusIsError)
	assert.Equal(t, "ok", s.StatusMessage)

	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
}
