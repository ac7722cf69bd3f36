package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doxa/internal/export"
	"doxa/internal/planfile"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		planPath string
		format   string
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a saved plan as Markdown or HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if planPath == "" {
				planPath = a.cfg.PlanPath
			}
			if outDir == "" {
				outDir = a.cfg.ExportDir
			}

			p, err := planfile.Load(planPath)
			if err != nil {
				return fmt.Errorf("load plan: %w", err)
			}
			path, err := export.WriteFile(cmd.Context(), p, outDir, f)
			if err != nil {
				return err
			}
			a.log.Info("plan exported", zap.String("plan", planPath), zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "plan file to export (default is plan_path)")
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatMarkdown), "output format: md or html")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default is export_dir)")
	return cmd
}
