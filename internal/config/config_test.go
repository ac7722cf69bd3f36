package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxa/internal/plan"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.False(t, cfg.Search.MatchAll)
	assert.True(t, cfg.UI.AutosaveOnExit)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig(t.TempDir())
	cfg.Search.MatchAll = true
	cfg.Search.Rank = plan.RankStale
	cfg.UI.Mouse = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nmatch_all = true\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Search.MatchAll)
	assert.True(t, cfg.UI.AutosaveOnExit)
}

func TestLoadRejectsUnknownRanker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nrank = \"popularity\"\n"), 0644))

	_, err := NewConfigService(path).Load()
	assert.ErrorIs(t, err, plan.ErrUnknownRanker)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0644))

	_, err := NewConfigService(path).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOXA_SEARCH_MATCH_ALL", "true")
	t.Setenv("DOXA_SEARCH_RANK", "play_count")
	t.Setenv("DOXA_DB_PATH", "/tmp/other.db")

	cfg, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml")).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Search.MatchAll)
	assert.Equal(t, "play_count", cfg.Search.Rank)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)

	opts, err := cfg.FilterOptions()
	require.NoError(t, err)
	assert.True(t, opts.MatchAll)
	assert.NotNil(t, opts.Rank)
}
