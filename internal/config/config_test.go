package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultLimit, cfg.DefaultLimit)
	require.Equal(t, DefaultRetentionDays, cfg.RetentionDays)
	require.Empty(t, cfg.Ignore)
	require.Empty(t, cfg.Database)
}

func TestLoadReadsValues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database: /tmp/custom.db
default_limit: 50
retention_days: 30
ignore:
  - ls
  - "fg*"
`
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", cfg.Database)
	require.Equal(t, 50, cfg.DefaultLimit)
	require.Equal(t, 30, cfg.RetentionDays)
	require.Equal(t, []string{"ls", "fg*"}, cfg.Ignore)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("ignore: [unclosed"), 0o600))

	_, err := Load(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot parse config")
}

func TestLoadGuardsOutOfRangeValues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("default_limit: -5\nretention_days: -1\n"), 0o600))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, DefaultLimit, cfg.DefaultLimit)
	require.Equal(t, DefaultRetentionDays, cfg.RetentionDays)
}

func TestIgnores(t *testing.T) {
	cfg := &Config{Ignore: []string{"ls", "clear", "fg*", " top"}}

	require.True(t, cfg.Ignores("ls"))
	require.True(t, cfg.Ignores("clear"))
	require.True(t, cfg.Ignores("fg"))
	require.True(t, cfg.Ignores("fg %1"))
	require.False(t, cfg.Ignores("ls -la"))
	require.False(t, cfg.Ignores("top"))
	require.False(t, cfg.Ignores("git status"))
}

func TestPathHonorsXDGConfigHome(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	p, err := Path()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(configHome, "histdb", "config.yaml"), p)
}

func TestPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	p, err := Path()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "histdb", "config.yaml"), p)
}
