package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doxa/internal/catalog"
	"doxa/internal/config"
	"doxa/internal/domain"
	"doxa/internal/logging"
)

// app holds the global flags and what PersistentPreRunE builds from them
type app struct {
	configPath string
	dbPath     string
	demo       bool
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

// songCatalog is a catalog that also accepts new songs
type songCatalog interface {
	catalog.Source
	AddSong(ctx context.Context, song domain.Song) (domain.Song, error)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "doxa",
		Short: "Plan church services from your song catalog",
		Long: `doxa is a terminal planner for church services.

Search the song catalog, build the ordered list of songs for the service,
record spiritual gifts and announcements, then export the plan as Markdown
or printable HTML.

Run without arguments to start the interactive planner.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: a.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/doxa/config.toml)")
	flags.StringVar(&a.dbPath, "db", "", "song catalog database (overrides db_path)")
	flags.BoolVar(&a.demo, "demo", false, "use the built-in sample catalog instead of the database")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "write debug logs")

	root.AddCommand(newSongsCmd(a), newExportCmd(a))
	return root
}

// setup loads the configuration and opens the log file
func (a *app) setup(cmd *cobra.Command, args []string) error {
	svc := config.NewConfigService(a.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	a.cfg = cfg

	logPath := filepath.Join(filepath.Dir(svc.Path()), logging.FileName)
	logger, err := logging.New(logPath, logging.Level(a.verbose))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logger.With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded", zap.String("path", svc.Path()), zap.String("db", cfg.DBPath))
	return nil
}

// openCatalog returns the catalog selected by the flags and a function
// releasing it
func (a *app) openCatalog(ctx context.Context) (songCatalog, func(), error) {
	if a.demo {
		return catalog.NewMemorySource(catalog.SampleSongs()...), func() {}, nil
	}

	store, err := catalog.Open(a.cfg.DBPath, a.log)
	if err != nil {
		return nil, nil, err
	}
	if _, err := store.Seed(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	release := func() {
		if err := store.Close(); err != nil {
			a.log.Warn("failed to close catalog", zap.Error(err))
		}
	}
	return store, release, nil
}
