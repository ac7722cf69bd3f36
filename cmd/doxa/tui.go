package main

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doxa/internal/catalog"
	"doxa/internal/eventbus"
	"doxa/internal/plan"
	"doxa/internal/planfile"
	"doxa/internal/ui"
)

// runTUI starts the interactive planner
func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	opts, err := a.cfg.FilterOptions()
	if err != nil {
		return err
	}
	source, release, err := a.openCatalog(ctx)
	if err != nil {
		return err
	}
	defer release()

	bus := eventbus.New(a.log)
	defer bus.Close()

	planner := plan.NewPlanner(bus, a.log, opts)
	model := ui.NewModel(bus, planner, a.cfg, a.log)

	saved, err := planfile.Load(a.cfg.PlanPath)
	switch {
	case err == nil:
		model.RestorePlan(saved)
	case errors.Is(err, fs.ErrNotExist):
		a.log.Debug("no saved plan", zap.String("path", a.cfg.PlanPath))
	default:
		a.log.Warn("failed to load saved plan", zap.Error(err))
		model.State().SetError(fmt.Sprintf("Could not load %s: %v", a.cfg.PlanPath, err))
	}

	loader := catalog.NewLoader(bus, source, a.log)
	defer loader.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Set up event forwarding to UI before the first load
	stopForwarding := ui.ForwardEvents(bus, p.Send, a.log)
	defer stopForwarding()

	if err := loader.Load(ctx); err != nil {
		return fmt.Errorf("start catalog load: %w", err)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
