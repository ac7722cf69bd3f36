package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"doxa/internal/plan"
)

// FileName is the default config file name inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version"`
	DBPath    string         `toml:"db_path" env:"DB_PATH"`
	ExportDir string         `toml:"export_dir" env:"EXPORT_DIR"`
	PlanPath  string         `toml:"plan_path" env:"PLAN_PATH"`
	Search    SearchSettings `toml:"search" envPrefix:"SEARCH_"`
	UI        UISettings     `toml:"ui" envPrefix:"UI_"`
}

// SearchSettings controls the song library search
type SearchSettings struct {
	// MatchAll lists the whole library while the search box is empty
	MatchAll bool   `toml:"match_all" env:"MATCH_ALL"`
	Rank     string `toml:"rank" env:"RANK"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit" env:"AUTOSAVE_ON_EXIT"`
	Mouse          bool `toml:"mouse" env:"MOUSE"`
}

// FilterOptions converts the search settings into filter options
func (c *Config) FilterOptions() (plan.FilterOptions, error) {
	rank, err := plan.RankerByName(c.Search.Rank)
	if err != nil {
		return plan.FilterOptions{}, err
	}
	return plan.FilterOptions{MatchAll: c.Search.MatchAll, Rank: rank}, nil
}

// Validate checks values that can not be fixed up silently
func (c *Config) Validate() error {
	if _, err := plan.RankerByName(c.Search.Rank); err != nil {
		return fmt.Errorf("search.rank: %w", err)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
	Load() (*Config, error)
	Save(config *Config) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
	dataDir  string
}

// NewConfigService creates a config service reading path. An empty path
// selects config.toml in the user config directory.
func NewConfigService(path string) ConfigService {
	dataDir := DataDir()
	if path == "" {
		path = filepath.Join(dataDir, FileName)
	}
	return &configService{filePath: path, dataDir: dataDir}
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies DOXA_* environment overrides
func (cs *configService) Load() (*Config, error) {
	cfg := DefaultConfig(cs.dataDir)

	data, err := os.ReadFile(cs.filePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "DOXA_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as TOML
func (cs *configService) Save(config *Config) error {
	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DataDir returns the per-user doxa directory used for the config file,
// the catalog database, exports and logs
func DataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "doxa")
}

// DefaultConfig returns the default configuration rooted at dataDir
func DefaultConfig(dataDir string) *Config {
	return &Config{
		Version:   1,
		DBPath:    filepath.Join(dataDir, "songs.db"),
		ExportDir: filepath.Join(dataDir, "exports"),
		PlanPath:  filepath.Join(dataDir, "plan.toml"),
		Search: SearchSettings{
			MatchAll: false,
			Rank:     "",
		},
		UI: UISettings{
			AutosaveOnExit: true,
			Mouse:          true,
		},
	}
}
