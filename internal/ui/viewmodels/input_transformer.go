package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"doxa/internal/ui/input/types"
)

// InputTransformer turns the input handler's mode into footer prompt data
type InputTransformer struct {
	mode      types.Mode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and its prompt
func (it *InputTransformer) SetMode(mode types.Mode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// Mode returns the current input mode
func (it *InputTransformer) Mode() types.Mode {
	return it.mode
}

// Prompt returns the prompt shown in the footer
func (it *InputTransformer) Prompt() string {
	if it.mode == types.ModeNormal {
		return ""
	}
	return it.prompt
}

// InputText returns the rendered text input, empty outside text modes
func (it *InputTransformer) InputText() string {
	switch it.mode {
	case types.ModeNormal, types.ModeConfirmRemove:
		return ""
	}
	return it.textInput.View()
}

// Confirming reports whether a yes/no question is on screen
func (it *InputTransformer) Confirming() bool {
	return it.mode == types.ModeConfirmRemove
}
