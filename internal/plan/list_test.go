package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters() *List[string] {
	return NewList("A", "B", "C", "D")
}

func TestAppendGrowsByOne(t *testing.T) {
	l := letters()
	l.Append("E")

	require.Equal(t, 5, l.Len())
	last, err := l.At(l.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, "E", last)
}

func TestAppendKeepsDuplicates(t *testing.T) {
	l := NewList[string]()
	l.Append("A")
	l.Append("A")

	assert.Equal(t, []string{"A", "A"}, l.Items())
}

func TestRemoveAtShiftsLaterEntries(t *testing.T) {
	for k := 0; k < 4; k++ {
		l := letters()
		before := l.Items()

		removed, err := l.RemoveAt(k)
		require.NoError(t, err)
		assert.Equal(t, before[k], removed)

		after := l.Items()
		require.Len(t, after, 3)
		for i := 0; i < k; i++ {
			assert.Equal(t, before[i], after[i], "entry before %d must not move", k)
		}
		for i := k + 1; i < 4; i++ {
			assert.Equal(t, before[i], after[i-1], "entry %d must shift down", i)
		}
	}
}

func TestRemoveAtRejectsOutOfRange(t *testing.T) {
	l := letters()

	_, err := l.RemoveAt(-1)
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, err = l.RemoveAt(l.Len())
	require.ErrorIs(t, err, ErrInvalidIndex)

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "remove", ie.Op)
	assert.Equal(t, 4, ie.Index)
	assert.Equal(t, 4, ie.Len)

	assert.Equal(t, []string{"A", "B", "C", "D"}, l.Items(), "rejected remove must not change the list")
}

func TestRemoveAtOnEmptyList(t *testing.T) {
	l := NewList[string]()
	_, err := l.RemoveAt(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestMoveSameSlotIsNoop(t *testing.T) {
	for k := 0; k < 4; k++ {
		l := letters()
		require.NoError(t, l.Move(k, k))
		assert.Equal(t, []string{"A", "B", "C", "D"}, l.Items())
	}
}

func TestMoveUsesPositionAfterRemoval(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to third", 0, 2, []string{"B", "C", "A", "D"}},
		{"last to first", 3, 0, []string{"D", "A", "B", "C"}},
		{"first to last", 0, 3, []string{"B", "C", "D", "A"}},
		{"adjacent down", 1, 2, []string{"A", "C", "B", "D"}},
		{"adjacent up", 2, 1, []string{"A", "C", "B", "D"}},
		{"middle up", 2, 0, []string{"C", "A", "B", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := letters()
			require.NoError(t, l.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, l.Items())
		})
	}
}

func TestMoveRejectsOutOfRange(t *testing.T) {
	l := letters()

	assert.ErrorIs(t, l.Move(-1, 0), ErrInvalidIndex)
	assert.ErrorIs(t, l.Move(0, 4), ErrInvalidIndex)
	assert.ErrorIs(t, l.Move(4, 4), ErrInvalidIndex)
	assert.Equal(t, []string{"A", "B", "C", "D"}, l.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	l := letters()
	items := l.Items()
	items[0] = "Z"

	first, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A", first)
}
