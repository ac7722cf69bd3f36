package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"doxa/internal/config"
	"doxa/internal/domain"
	"doxa/internal/eventbus"
	"doxa/internal/export"
	"doxa/internal/plan"
	"doxa/internal/ui/commands"
	"doxa/internal/ui/handlers"
	"doxa/internal/ui/input"
	inputtypes "doxa/internal/ui/input/types"
	"doxa/internal/ui/state"
	"doxa/internal/ui/viewmodels"
	"doxa/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	planner *plan.Planner
	log     *zap.Logger
	state   *state.AppState // centralized state

	width       int
	height      int
	layout      views.Layout
	inPagerMode bool // tracks if we're currently in pager mode

	drag          plan.DragTracker
	newItemID     string // gift or announcement created by the edit in progress
	quitAfterSave bool
	helpScroll    int
	previewScroll int

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, planner *plan.Planner, cfg *config.Config, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		planner:      planner,
		log:          log.Named("ui"),
		state:        appState,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, planner, log)
	m.cmdExecutor = commands.NewExecutor(appState, bus, planner, log)
	m.viewModel = viewmodels.NewViewModel(appState, planner, textinput.New())
	m.helpRenderer = NewHelpRenderer(m.viewModel.Keys())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the UI state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}
		if m.state.ShowPreview {
			return m, m.handlePreviewKey(msg)
		}

		ctx := &input.ModelContext{
			State:   m.state,
			Planner: m.planner,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		cmd := m.inputHandler.Update(msg)
		_, other := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(cmd, other)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	dragIndex := -1
	if m.drag.Active() {
		dragIndex = m.drag.Index()
	}
	m.viewModel.SetDragIndex(dragIndex)
	if m.state.ShowHelp {
		m.viewModel.SetHelp(m.helpRenderer.Render(), m.helpScroll)
	}
	m.viewModel.SetPreviewScroll(m.previewScroll)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.layout = views.Layout{Width: width, Height: height}
	m.state.SetRows(inputtypes.PaneLibrary, m.layout.LibraryRows())
	m.state.SetRows(inputtypes.PaneSongs, m.layout.SongRows())
	m.state.SetRows(inputtypes.PaneGifts, m.layout.NoteRows())
	m.state.SetRows(inputtypes.PaneAnnouncements, m.layout.NoteRows())
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.helpScroll = 0
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "ctrl+c":
		return m.quit(true)
	}
	return nil
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "p", "q":
		m.state.ShowPreview = false
		m.state.PreviewContent = ""
		m.previewScroll = 0
	case "j", "down":
		m.previewScroll++
	case "k", "up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "ctrl+c":
		return m.quit(true)
	}
	return nil
}

// total returns the number of entries in pane
func (m *Model) total(pane inputtypes.Pane) int {
	switch pane {
	case inputtypes.PaneLibrary:
		return len(m.planner.Results())
	case inputtypes.PaneSongs:
		return len(m.planner.Songs())
	case inputtypes.PaneGifts:
		return len(m.planner.Gifts())
	case inputtypes.PaneAnnouncements:
		return len(m.planner.Announcements())
	}
	return 0
}

func (m *Model) markDirty() {
	m.state.Dirty = true
}

func (m *Model) showError(err error) {
	m.log.Warn("action failed", zap.Error(err))
	m.state.SetError(fmt.Sprintf("Error: %v", err))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	focus := m.state.Focus
	cursor := m.state.Cursor(focus)

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(focus, a.Direction)

	case inputtypes.FocusPaneAction:
		m.state.Focus = a.Pane
		m.state.ClampCursor(a.Pane, m.total(a.Pane))

	case inputtypes.CyclePaneAction:
		next := focus.Next()
		if a.Reverse {
			next = focus.Prev()
		}
		m.state.Focus = next
		m.state.ClampCursor(next, m.total(next))

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.planner.SetQuery(a.Text)
			m.state.SetCursor(inputtypes.PaneLibrary, 0, m.total(inputtypes.PaneLibrary))
		}

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.CancelTextAction:
		m.cancelText(a)

	case inputtypes.AddResultAction:
		song, err := m.planner.AddResult(m.state.Cursor(inputtypes.PaneLibrary))
		if err != nil {
			m.showError(err)
			return nil
		}
		m.markDirty()
		m.state.ClampCursor(inputtypes.PaneLibrary, m.total(inputtypes.PaneLibrary))
		m.state.SetCursor(inputtypes.PaneSongs, m.total(inputtypes.PaneSongs)-1, m.total(inputtypes.PaneSongs))
		m.state.SetStatus(fmt.Sprintf("Added %s", song.Title))

	case inputtypes.RemoveAction:
		if err := m.removeAt(focus, cursor); err != nil {
			m.showError(err)
			return nil
		}
		m.markDirty()
		m.state.ClampCursor(focus, m.total(focus))
		if focus == inputtypes.PaneSongs {
			m.state.ClampCursor(inputtypes.PaneLibrary, m.total(inputtypes.PaneLibrary))
		}

	case inputtypes.MoveUpAction:
		if focus == inputtypes.PaneSongs && cursor > 0 {
			m.moveSong(cursor, cursor-1)
		}

	case inputtypes.MoveDownAction:
		if focus == inputtypes.PaneSongs && cursor < m.total(focus)-1 {
			m.moveSong(cursor, cursor+1)
		}

	case inputtypes.NewItemAction:
		switch focus {
		case inputtypes.PaneGifts:
			m.newItemID = m.planner.AddGift().ID
		case inputtypes.PaneAnnouncements:
			m.newItemID = m.planner.AddAnnouncement().ID
		default:
			return nil
		}
		m.markDirty()
		m.state.SetCursor(focus, m.total(focus)-1, m.total(focus))

	case inputtypes.CycleGiftTypeAction:
		gifts := m.planner.Gifts()
		if cursor < 0 || cursor >= len(gifts) {
			return nil
		}
		if err := m.planner.SetGiftType(gifts[cursor].ID, gifts[cursor].Type.Next()); err != nil {
			m.showError(err)
			return nil
		}
		m.markDirty()

	case inputtypes.ExportAction:
		return m.cmdExecutor.ExecuteExport(m.config.ExportDir)

	case inputtypes.PreviewAction:
		return m.fetchPreviewPager(export.Markdown(m.planner.Snapshot()))

	case inputtypes.SavePlanAction:
		m.state.SetStatus("Saving…")
		return m.cmdExecutor.ExecuteSavePlan(m.config.PlanPath)

	case inputtypes.ReloadCatalogAction:
		return m.cmdExecutor.ExecuteReloadCatalog()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.helpScroll = 0

	case inputtypes.QuitAction:
		return m.quit(a.Force)
	}

	return nil
}

func (m *Model) navigate(pane inputtypes.Pane, direction string) {
	total := m.total(pane)
	switch direction {
	case "up":
		m.state.MoveCursor(pane, -1, total)
	case "down":
		m.state.MoveCursor(pane, 1, total)
	case "pageup":
		m.state.MoveCursor(pane, -m.state.Rows(pane), total)
	case "pagedown":
		m.state.MoveCursor(pane, m.state.Rows(pane), total)
	case "home":
		m.state.SetCursor(pane, 0, total)
	case "end":
		m.state.SetCursor(pane, total-1, total)
	}
}

func (m *Model) moveSong(from, to int) {
	if err := m.planner.MoveSong(from, to); err != nil {
		m.showError(err)
		return
	}
	m.markDirty()
	m.state.SetCursor(inputtypes.PaneSongs, to, m.total(inputtypes.PaneSongs))
}

func (m *Model) removeAt(pane inputtypes.Pane, i int) error {
	switch pane {
	case inputtypes.PaneSongs:
		song, err := m.planner.RemoveSong(i)
		if err == nil {
			m.state.SetStatus(fmt.Sprintf("Removed %s", song.Title))
		}
		return err
	case inputtypes.PaneGifts:
		gifts := m.planner.Gifts()
		if i < 0 || i >= len(gifts) {
			return &plan.IndexError{Op: "remove gift", Index: i, Len: len(gifts)}
		}
		return m.planner.RemoveGift(gifts[i].ID)
	case inputtypes.PaneAnnouncements:
		items := m.planner.Announcements()
		if i < 0 || i >= len(items) {
			return &plan.IndexError{Op: "remove announcement", Index: i, Len: len(items)}
		}
		return m.planner.RemoveAnnouncement(items[i].ID)
	}
	return nil
}

// currentNoteID returns the id of the highlighted gift or announcement
func (m *Model) currentNoteID() string {
	i := m.state.Cursor(m.state.Focus)
	switch m.state.Focus {
	case inputtypes.PaneGifts:
		if gifts := m.planner.Gifts(); i >= 0 && i < len(gifts) {
			return gifts[i].ID
		}
	case inputtypes.PaneAnnouncements:
		if items := m.planner.Announcements(); i >= 0 && i < len(items) {
			return items[i].ID
		}
	}
	return ""
}

func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	switch a.Mode {
	case inputtypes.ModeSearch:
		m.planner.SetQuery(a.Text)
		m.state.ClampCursor(inputtypes.PaneLibrary, m.total(inputtypes.PaneLibrary))

	case inputtypes.ModeEditContent:
		m.newItemID = ""
		id := m.currentNoteID()
		if id == "" {
			return nil
		}
		var err error
		if m.state.Focus == inputtypes.PaneGifts {
			err = m.planner.UpdateGift(id, a.Text)
		} else {
			err = m.planner.UpdateAnnouncement(id, a.Text)
		}
		if err != nil {
			m.showError(err)
			return nil
		}
		m.markDirty()

	case inputtypes.ModeServiceName:
		m.planner.SetServiceName(a.Text)
		m.markDirty()

	case inputtypes.ModeServiceDate:
		if err := validateDate(a.Text); err != nil {
			m.showError(err)
			return nil
		}
		m.planner.SetServiceDate(a.Text)
		m.markDirty()
	}
	return nil
}

func (m *Model) cancelText(a inputtypes.CancelTextAction) {
	switch a.Mode {
	case inputtypes.ModeSearch:
		m.planner.SetQuery("")
		m.state.SetCursor(inputtypes.PaneLibrary, 0, m.total(inputtypes.PaneLibrary))

	case inputtypes.ModeEditContent:
		// Abandoning a brand new entry drops it again
		if m.newItemID == "" {
			return
		}
		var err error
		if m.state.Focus == inputtypes.PaneGifts {
			err = m.planner.RemoveGift(m.newItemID)
		} else {
			err = m.planner.RemoveAnnouncement(m.newItemID)
		}
		m.newItemID = ""
		if err != nil && !errors.Is(err, plan.ErrNotFound) {
			m.showError(err)
		}
		m.state.ClampCursor(m.state.Focus, m.total(m.state.Focus))
	}
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("service date %q is not YYYY-MM-DD", s)
	}
	return nil
}

// quit leaves the program. A changed plan is saved first unless forced, and
// the program only exits once that save succeeded.
func (m *Model) quit(force bool) tea.Cmd {
	if force || !m.state.Dirty || !m.config.UI.AutosaveOnExit {
		return tea.Quit
	}
	m.log.Info("autosaving plan before exit", zap.String("path", m.config.PlanPath))
	m.quitAfterSave = true
	m.state.SetStatus("Saving plan…")
	return m.cmdExecutor.ExecuteSavePlan(m.config.PlanPath)
}

// handleMouse turns wheel events into navigation and left-button drags on the
// song list into moves
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UI.Mouse || m.state.ShowHelp || m.state.ShowPreview {
		return nil
	}
	songs := inputtypes.PaneSongs
	offset := m.state.Offset(songs)
	count := m.total(songs)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.navigate(m.state.Focus, "up")

	case msg.Button == tea.MouseButtonWheelDown:
		m.navigate(m.state.Focus, "down")

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		i, ok := m.layout.SongAt(msg.X, msg.Y, offset, count)
		if !ok {
			return nil
		}
		m.state.Focus = songs
		m.state.SetCursor(songs, i, count)
		m.drag.Start(i)

	case msg.Action == tea.MouseActionMotion && m.drag.Active():
		hover, ok := m.layout.SongAt(m.layout.LeftWidth(), msg.Y, offset, count)
		if !ok {
			return nil
		}
		// The pointer sits in the middle of its cell
		from, to, ok := m.drag.Hover(hover, m.layout.SongRowRect(hover-offset), float64(msg.Y)+0.5)
		if ok {
			m.moveSong(from, to)
		}

	case msg.Action == tea.MouseActionRelease:
		m.drag.End()
	}
	return nil
}

// fetchPreviewPager returns a command that shows content using ov pager
func (m *Model) fetchPreviewPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{content: content, err: errNoProgram}
		}

		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{content: content, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case pagerMsg:
		if msg.err != nil {
			m.log.Debug("pager unavailable, falling back to popup", zap.Error(msg.err))
			m.state.PreviewContent = msg.content
			m.state.ShowPreview = true
			m.previewScroll = 0
		}
		return m, nil

	case commands.ExportedMsg:
		if msg.Err != nil {
			m.showError(msg.Err)
			return m, nil
		}
		m.state.SetStatus(fmt.Sprintf("Exported %s", joinPaths(msg.Paths)))
		return m, clearStatusAfter(5 * time.Second)

	case commands.PlanSavedMsg:
		quitting := m.quitAfterSave
		m.quitAfterSave = false
		if msg.Err != nil {
			m.showError(msg.Err)
			if quitting {
				m.state.SetError(fmt.Sprintf("Error: %v (ctrl+c quits without saving)", msg.Err))
			}
			return m, nil
		}
		m.state.Dirty = false
		if quitting {
			return m, tea.Quit
		}
		m.state.SetStatus(fmt.Sprintf("Saved %s", msg.Path))
		return m, clearStatusAfter(3 * time.Second)

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tick()

	case clearStatusMsg:
		if !m.state.StatusIsError {
			m.state.ClearStatus()
		}
		return m, nil
	}
	return m, nil
}

// RestorePlan loads a previously saved plan into the planner without marking
// it as changed
func (m *Model) RestorePlan(p domain.Plan) {
	m.planner.Restore(p)
	m.state.Dirty = false
	for _, pane := range inputtypes.Panes {
		m.state.ClampCursor(pane, m.total(pane))
	}
}

func joinPaths(paths []string) string {
	switch len(paths) {
	case 0:
		return "nothing"
	case 1:
		return paths[0]
	}
	return fmt.Sprintf("%s and %d more", paths[0], len(paths)-1)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
