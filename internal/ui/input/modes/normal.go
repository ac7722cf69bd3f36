package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"doxa/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	pane := ctx.FocusedPane()
	hasItems := ctx.TotalItems() > 0

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlS:
		return []types.Action{types.SavePlanAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.CyclePaneAction{}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CyclePaneAction{Reverse: true}}, true

	case tea.KeyEnter:
		switch pane {
		case types.PaneLibrary:
			if hasItems {
				return []types.Action{types.AddResultAction{}}, true
			}
		case types.PaneGifts, types.PaneAnnouncements:
			if hasItems {
				return []types.Action{types.ChangeModeAction{Mode: types.ModeEditContent, Data: ctx.CurrentContent()}}, true
			}
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "1", "2", "3", "4":
		return []types.Action{types.FocusPaneAction{Pane: types.Panes[msg.Runes[0]-'1']}}, true

	case "/":
		return []types.Action{
			types.FocusPaneAction{Pane: types.PaneLibrary},
			types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()},
		}, true

	case "a":
		if pane == types.PaneLibrary && hasItems {
			return []types.Action{types.AddResultAction{}}, true
		}
		return nil, false

	case "x", "delete":
		if !hasItems {
			return nil, false
		}
		switch pane {
		case types.PaneSongs:
			return []types.Action{types.RemoveAction{}}, true
		case types.PaneGifts, types.PaneAnnouncements:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmRemove}}, true
		}
		return nil, false

	case "K", "shift+up":
		if pane == types.PaneSongs && hasItems {
			return []types.Action{types.MoveUpAction{}}, true
		}
		return nil, false

	case "J", "shift+down":
		if pane == types.PaneSongs && hasItems {
			return []types.Action{types.MoveDownAction{}}, true
		}
		return nil, false

	case "n":
		if pane == types.PaneGifts || pane == types.PaneAnnouncements {
			return []types.Action{
				types.NewItemAction{},
				types.ChangeModeAction{Mode: types.ModeEditContent},
			}, true
		}
		return nil, false

	case "e":
		if (pane == types.PaneGifts || pane == types.PaneAnnouncements) && hasItems {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeEditContent, Data: ctx.CurrentContent()}}, true
		}
		return nil, false

	case "t":
		if pane == types.PaneGifts && hasItems {
			return []types.Action{types.CycleGiftTypeAction{}}, true
		}
		return nil, false

	case "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeServiceName, Data: ctx.ServiceName()}}, true

	case "D":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeServiceDate, Data: ctx.ServiceDate()}}, true

	case "E":
		return []types.Action{types.ExportAction{}}, true

	case "p":
		return []types.Action{types.PreviewAction{}}, true

	case "r":
		return []types.Action{types.ReloadCatalogAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
