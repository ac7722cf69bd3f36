package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"doxa/internal/eventbus"
	"doxa/internal/export"
	"doxa/internal/plan"
	"doxa/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, planner *plan.Planner, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Bus:     bus,
			Planner: planner,
			Log:     log.Named("commands"),
		},
	}
}

// ExecuteExport creates and executes an export command
func (e *Executor) ExecuteExport(dir string, formats ...export.Format) tea.Cmd {
	cmd := NewExportCommand(e.ctx, dir, formats...)
	return cmd.Execute()
}

// ExecuteSavePlan creates and executes a save command
func (e *Executor) ExecuteSavePlan(path string) tea.Cmd {
	cmd := NewSavePlanCommand(e.ctx, path)
	return cmd.Execute()
}

// ExecuteReloadCatalog creates and executes a reload command
func (e *Executor) ExecuteReloadCatalog() tea.Cmd {
	cmd := NewReloadCatalogCommand(e.ctx)
	return cmd.Execute()
}
