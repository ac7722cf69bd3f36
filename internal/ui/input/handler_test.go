package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxa/internal/ui/input/types"
)

// fakeContext is a fixed snapshot of model state
type fakeContext struct {
	pane    types.Pane
	index   int
	total   int
	query   string
	content string
}

func (c fakeContext) FocusedPane() types.Pane { return c.pane }
func (c fakeContext) CurrentIndex() int       { return c.index }
func (c fakeContext) TotalItems() int         { return c.total }
func (c fakeContext) Query() string           { return c.query }
func (c fakeContext) CurrentContent() string  { return c.content }
func (c fakeContext) ServiceName() string     { return "Sunday" }
func (c fakeContext) ServiceDate() string     { return "" }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlashEntersSearchWithQuery(t *testing.T) {
	h := New()
	ctx := fakeContext{pane: types.PaneSongs, query: "gra"}

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.FocusPaneAction{Pane: types.PaneLibrary}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "gra", h.TextInput().Value())
	assert.Equal(t, "Search: ", h.Prompt())
}

func TestTypingEmitsUpdates(t *testing.T) {
	h := New()
	ctx := fakeContext{pane: types.PaneLibrary}
	h.HandleKey(runes("/"), ctx)

	actions, _ := h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "q", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode(), "q types instead of quitting")
}

func TestSearchEnter(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), fakeContext{pane: types.PaneLibrary})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{pane: types.PaneLibrary, total: 2})
	assert.Equal(t, []types.Action{types.AddResultAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())

	h.HandleKey(runes("/"), fakeContext{pane: types.PaneLibrary})
	h.HandleKey(runes("z"), fakeContext{pane: types.PaneLibrary})
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{pane: types.PaneLibrary})
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "z", Mode: types.ModeSearch}}, actions)
}

func TestEscapeCancels(t *testing.T) {
	h := New()
	ctx := fakeContext{pane: types.PaneGifts, total: 1, content: "old"}
	h.HandleKey(runes("e"), ctx)
	require.Equal(t, types.ModeEditContent, h.CurrentMode())
	assert.Equal(t, "old", h.TextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{Mode: types.ModeEditContent}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNormalKeysDependOnPane(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("x"), fakeContext{pane: types.PaneSongs, total: 2})
	assert.Equal(t, []types.Action{types.RemoveAction{}}, actions)

	actions, _ = h.HandleKey(runes("x"), fakeContext{pane: types.PaneSongs})
	assert.Empty(t, actions, "nothing to remove")

	actions, _ = h.HandleKey(runes("K"), fakeContext{pane: types.PaneLibrary, total: 2})
	assert.Empty(t, actions, "only songs move")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftUp}, fakeContext{pane: types.PaneSongs, total: 2})
	assert.Equal(t, []types.Action{types.MoveUpAction{}}, actions)

	actions, _ = h.HandleKey(runes("t"), fakeContext{pane: types.PaneAnnouncements, total: 1})
	assert.Empty(t, actions, "announcements have no type")
}

func TestRemoveNoteAsksFirst(t *testing.T) {
	h := New()
	ctx := fakeContext{pane: types.PaneAnnouncements, total: 1}

	actions, _ := h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeConfirmRemove, h.CurrentMode())
	assert.Nil(t, h.TextInput())

	actions, _ = h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{types.RemoveAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestServiceNamePrefilled(t *testing.T) {
	h := New()
	h.HandleKey(runes("N"), fakeContext{})
	require.Equal(t, types.ModeServiceName, h.CurrentMode())
	assert.Equal(t, "Sunday", h.TextInput().Value())
}

func TestReset(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), fakeContext{})
	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSubmitTrimsText(t *testing.T) {
	h := New()
	ctx := fakeContext{}
	h.HandleKey(runes("D"), ctx)
	require.Equal(t, types.ModeServiceDate, h.CurrentMode())

	for _, r := range " 2024-03-10 " {
		h.HandleKey(runes(string(r)), ctx)
	}
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "2024-03-10", Mode: types.ModeServiceDate}}, actions)
}
