package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "adb", cfg.ADBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(ConfigDir(), "workspace"), cfg.Workspace())
	assert.Equal(t, filepath.Join(cfg.Workspace(), "shells"), cfg.ShellsDir())
	assert.Equal(t, filepath.Join(cfg.Workspace(), "screenshots"), cfg.Screenshots())
	assert.NotNil(t, cfg.Actions)
	assert.NotNil(t, cfg.Shells)
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `adb_path: /opt/platform-tools/adb
workspace_dir: ` + dir + `/ws
log_level: debug
actions:
  dark_on:
    - [cmd, uimode, night, "yes"]
shells:
  warmup: ` + dir + `/warmup.sh
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/platform-tools/adb", cfg.ADBPath)
	assert.Equal(t, "npm", cfg.NPMPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "ws"), cfg.Workspace())
	assert.Equal(t, [][]string{{"cmd", "uimode", "night", "yes"}}, cfg.Actions["dark_on"])
	assert.Equal(t, filepath.Join(dir, "warmup.sh"), cfg.ShellPaths()["warmup"])
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions: [oops"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.ScreenshotDir = "/tmp/shots"
	cfg.Shells["reset"] = "/tmp/reset.sh"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shots", loaded.Screenshots())
	assert.Equal(t, "/tmp/reset.sh", loaded.Shells["reset"])
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shots"), expandHome("~/shots"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "~other/x", expandHome("~other/x"))
}

func TestEnsureWorkspace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkspaceDir = filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, cfg.EnsureWorkspace())
	info, err := os.Stat(cfg.Workspace())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
