package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"doxa/internal/plan"
	"doxa/internal/ui/input/types"
	"doxa/internal/ui/state"
	"doxa/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	planner          *plan.Planner
	width            int
	height           int
	help             help.Model
	keys             KeyMap
	dragIndex        int
	helpContent      string
	helpScroll       int
	previewScroll    int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, planner *plan.Planner, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		planner:          planner,
		help:             help.New(),
		keys:             DefaultKeyMap(),
		dragIndex:        -1,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// Keys returns the key map
func (vm *ViewModel) Keys() KeyMap {
	return vm.keys
}

// SetInputMode sets the current input mode and prompt
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetDragIndex marks the song being dragged, -1 for none
func (vm *ViewModel) SetDragIndex(i int) {
	vm.dragIndex = i
}

// SetHelp sets the help screen content and scroll position
func (vm *ViewModel) SetHelp(content string, scroll int) {
	vm.helpContent = content
	vm.helpScroll = scroll
}

// SetPreviewScroll sets the preview popup scroll position
func (vm *ViewModel) SetPreviewScroll(scroll int) {
	vm.previewScroll = scroll
}

func (vm *ViewModel) keyHelp() string {
	if vm.inputTransformer.Mode() != types.ModeNormal {
		return vm.help.ShortHelpView(vm.keys.ForMode(vm.inputTransformer.Mode()))
	}
	return vm.help.ShortHelpView(vm.keys.ForPane(vm.state.Focus))
}

func (vm *ViewModel) cursors() (map[types.Pane]int, map[types.Pane]int) {
	cursors := make(map[types.Pane]int, len(types.Panes))
	offsets := make(map[types.Pane]int, len(types.Panes))
	for _, p := range types.Panes {
		cursors[p] = vm.state.Cursor(p)
		offsets[p] = vm.state.Offset(p)
	}
	return cursors, offsets
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	cursors, offsets := vm.cursors()
	return views.ViewState{
		Width:               vm.width,
		Height:              vm.height,
		Focus:               vm.state.Focus,
		Service:             vm.planner.Service(),
		Query:               vm.planner.Query(),
		Searching:           vm.inputTransformer.Mode() == types.ModeSearch,
		MatchAll:            vm.planner.Options().MatchAll,
		Results:             vm.planner.Results(),
		Songs:               vm.planner.Songs(),
		Gifts:               vm.planner.Gifts(),
		Announcements:       vm.planner.Announcements(),
		Cursors:             cursors,
		Offsets:             offsets,
		DragIndex:           vm.dragIndex,
		Loading:             vm.state.Loading,
		CatalogSize:         vm.planner.CatalogSize(),
		Dirty:               vm.state.Dirty,
		StatusMessage:       vm.state.StatusMessage,
		StatusIsError:       vm.state.StatusIsError,
		Prompt:              vm.inputTransformer.Prompt(),
		TextInput:           vm.inputTransformer.InputText(),
		Confirming:          vm.inputTransformer.Confirming(),
		KeyHelp:             vm.keyHelp(),
		ShowHelp:            vm.state.ShowHelp,
		HelpContent:         vm.helpContent,
		HelpScrollOffset:    vm.helpScroll,
		ShowPreview:         vm.state.ShowPreview,
		PreviewContent:      vm.state.PreviewContent,
		PreviewScrollOffset: vm.previewScroll,
	}
}
