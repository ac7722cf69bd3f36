package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type FocusPaneAction struct {
	Pane Pane
}

func (a FocusPaneAction) Type() string { return "focus_pane" }

type CyclePaneAction struct {
	Reverse bool
}

func (a CyclePaneAction) Type() string { return "cycle_pane" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Plan editing actions
type AddResultAction struct{}

func (a AddResultAction) Type() string { return "add_result" }

// RemoveAction removes the highlighted entry of the focused pane
type RemoveAction struct{}

func (a RemoveAction) Type() string { return "remove" }

type MoveUpAction struct{}

func (a MoveUpAction) Type() string { return "move_up" }

type MoveDownAction struct{}

func (a MoveDownAction) Type() string { return "move_down" }

// NewItemAction adds a gift or announcement to the focused pane
type NewItemAction struct{}

func (a NewItemAction) Type() string { return "new_item" }

type CycleGiftTypeAction struct{}

func (a CycleGiftTypeAction) Type() string { return "cycle_gift_type" }

// Command actions
type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type PreviewAction struct{}

func (a PreviewAction) Type() string { return "preview" }

type SavePlanAction struct{}

func (a SavePlanAction) Type() string { return "save_plan" }

type ReloadCatalogAction struct{}

func (a ReloadCatalogAction) Type() string { return "reload_catalog" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
