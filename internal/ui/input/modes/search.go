package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"doxa/internal/ui/input/types"
)

// SearchMode edits the library query. Results refresh on every keystroke
// and the arrow keys keep moving through them while typing.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: newTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up", "ctrl+p":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "ctrl+n":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "enter":
		// Keep the query and add the highlighted result straight away
		if ctx.TotalItems() > 0 {
			return []types.Action{
				types.AddResultAction{},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
