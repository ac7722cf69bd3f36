package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"doxa/internal/ui/input/types"
)

// EditMode edits a single line of plan text. The input handler pre-fills
// the current value when the mode is entered.
type EditMode struct {
	TextInputMode
}

func NewEditContentMode(ti *textinput.Model) *EditMode {
	return &EditMode{TextInputMode: newTextInputMode(types.ModeEditContent, "edit", "Text: ", ti)}
}

func NewServiceNameMode(ti *textinput.Model) *EditMode {
	return &EditMode{TextInputMode: newTextInputMode(types.ModeServiceName, "service name", "Service name: ", ti)}
}

func NewServiceDateMode(ti *textinput.Model) *EditMode {
	return &EditMode{TextInputMode: newTextInputMode(types.ModeServiceDate, "service date", "Service date (YYYY-MM-DD): ", ti)}
}
