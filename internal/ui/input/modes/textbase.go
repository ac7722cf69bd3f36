package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"doxa/internal/ui/input/types"
)

// TextInputMode is shared by the prompt modes. Esc cancels, enter submits the
// trimmed text and every other key is left to the text input.
type TextInputMode struct {
	mode   types.Mode
	name   string
	prompt string
	input  *textinput.Model
}

func newTextInputMode(mode types.Mode, name, prompt string, input *textinput.Model) TextInputMode {
	return TextInputMode{mode: mode, name: name, prompt: prompt, input: input}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Prompt is rendered in front of the input by the footer
func (m TextInputMode) Prompt() string {
	return m.prompt
}

// Enter and Exit are no-ops: the input handler seeds, focuses and clears the
// shared input on every mode change.
func (m TextInputMode) Enter(types.Context) []types.Action { return nil }

func (m TextInputMode) Exit(types.Context) []types.Action { return nil }

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return m.leave(types.CancelTextAction{Mode: m.mode}), true
	case tea.KeyEnter:
		return m.leave(types.SubmitTextAction{Text: m.value(), Mode: m.mode}), true
	}
	return nil, false
}

func (m TextInputMode) value() string {
	if m.input == nil {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

func (m TextInputMode) leave(result types.Action) []types.Action {
	return []types.Action{result, types.ChangeModeAction{Mode: types.ModeNormal}}
}
