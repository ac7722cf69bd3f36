package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doxa/internal/plan"
)

func TestLayoutColumns(t *testing.T) {
	l := Layout{Width: 100, Height: 40}
	assert.Equal(t, 40, l.LeftWidth())
	assert.Equal(t, 60, l.RightWidth())

	narrow := Layout{Width: 30, Height: 20}
	assert.Equal(t, 24, narrow.LeftWidth())
	assert.Equal(t, 6, narrow.RightWidth())
}

func TestLayoutRowsNeverZero(t *testing.T) {
	tiny := Layout{Width: 10, Height: 3}
	assert.GreaterOrEqual(t, tiny.LibraryRows(), 1)
	assert.GreaterOrEqual(t, tiny.SongRows(), 1)
	assert.GreaterOrEqual(t, tiny.NoteRows(), 1)
}

func TestSongRowRect(t *testing.T) {
	l := Layout{Width: 100, Height: 40}
	assert.Equal(t, plan.Rect{Top: 3, Bottom: 5}, l.SongRowRect(0))
	assert.Equal(t, plan.Rect{Top: 7, Bottom: 9}, l.SongRowRect(2))
}

func TestSongAt(t *testing.T) {
	l := Layout{Width: 100, Height: 40}
	x := l.LeftWidth() + 1

	i, ok := l.SongAt(x, 3, 0, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = l.SongAt(x, 4, 0, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, i, "both lines of an entry belong to it")

	i, ok = l.SongAt(x, 5, 2, 5)
	assert.True(t, ok)
	assert.Equal(t, 3, i, "scroll offset is added")

	_, ok = l.SongAt(x, 9, 0, 3)
	assert.False(t, ok, "below the last song")

	_, ok = l.SongAt(5, 3, 0, 3)
	assert.False(t, ok, "library column")

	_, ok = l.SongAt(x, 2, 0, 3)
	assert.False(t, ok, "pane title")
}
