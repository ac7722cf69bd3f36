package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"doxa/internal/eventbus"
	"doxa/internal/export"
	"doxa/internal/plan"
	"doxa/internal/planfile"
	"doxa/internal/ui/state"
)

// writeTimeout bounds a single export or save
const writeTimeout = 10 * time.Second

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Planner *plan.Planner
	Log     *zap.Logger
}

func (c *CommandContext) publish(e eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}

// ExportedMsg reports the outcome of an export
type ExportedMsg struct {
	Paths []string
	Err   error
}

// PlanSavedMsg reports the outcome of saving the plan file
type PlanSavedMsg struct {
	Path string
	Err  error
}

// ExportCommand writes the current plan in each requested format
type ExportCommand struct {
	ctx     *CommandContext
	dir     string
	formats []export.Format
}

// NewExportCommand creates a new export command
func NewExportCommand(ctx *CommandContext, dir string, formats ...export.Format) *ExportCommand {
	if len(formats) == 0 {
		formats = []export.Format{export.FormatMarkdown, export.FormatHTML}
	}
	return &ExportCommand{
		ctx:     ctx,
		dir:     dir,
		formats: formats,
	}
}

// Execute snapshots the plan and writes it in the background
func (c *ExportCommand) Execute() tea.Cmd {
	snapshot := c.ctx.Planner.Snapshot()
	c.ctx.State.SetStatus("Exporting…")
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		paths := make([]string, 0, len(c.formats))
		for _, format := range c.formats {
			path, err := export.WriteFile(ctx, snapshot, c.dir, format)
			if err != nil {
				c.ctx.Log.Error("export failed", zap.String("format", string(format)), zap.Error(err))
				return ExportedMsg{Paths: paths, Err: fmt.Errorf("export %s: %w", format, err)}
			}
			c.ctx.Log.Info("plan exported", zap.String("path", path))
			c.ctx.publish(eventbus.PlanExportedEvent{Path: path, Format: string(format)})
			paths = append(paths, path)
		}
		return ExportedMsg{Paths: paths}
	}
}

// SavePlanCommand writes the plan file
type SavePlanCommand struct {
	ctx  *CommandContext
	path string
}

// NewSavePlanCommand creates a new save command
func NewSavePlanCommand(ctx *CommandContext, path string) *SavePlanCommand {
	return &SavePlanCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute snapshots the plan and saves it in the background
func (c *SavePlanCommand) Execute() tea.Cmd {
	snapshot := c.ctx.Planner.Snapshot()
	return func() tea.Msg {
		if err := planfile.Save(c.path, snapshot); err != nil {
			c.ctx.Log.Error("save plan failed", zap.String("path", c.path), zap.Error(err))
			return PlanSavedMsg{Path: c.path, Err: err}
		}
		c.ctx.Log.Info("plan saved", zap.String("path", c.path))
		c.ctx.publish(eventbus.PlanSavedEvent{Path: c.path})
		return PlanSavedMsg{Path: c.path}
	}
}

// ReloadCatalogCommand asks the catalog loader to read the catalog again
type ReloadCatalogCommand struct {
	ctx *CommandContext
}

// NewReloadCatalogCommand creates a new reload command
func NewReloadCatalogCommand(ctx *CommandContext) *ReloadCatalogCommand {
	return &ReloadCatalogCommand{ctx: ctx}
}

// Execute marks the catalog as loading and publishes the request
func (c *ReloadCatalogCommand) Execute() tea.Cmd {
	c.ctx.State.Loading = true
	c.ctx.State.SetStatus("Reloading catalog…")
	c.ctx.publish(eventbus.CatalogReloadRequestedEvent{})
	return nil
}
