package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	ADBPath       string                `yaml:"adb_path"`
	NPMPath       string                `yaml:"npm_path"`
	WorkspaceDir  string                `yaml:"workspace_dir"`
	ShellDir      string                `yaml:"shell_dir,omitempty"`
	ScreenshotDir string                `yaml:"screenshot_dir,omitempty"`
	LogLevel      string                `yaml:"log_level"`
	Actions       map[string][][]string `yaml:"actions,omitempty"`
	Shells        map[string]string     `yaml:"shells,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ADBPath:      "adb",
		NPMPath:      "npm",
		WorkspaceDir: filepath.Join(ConfigDir(), "workspace"),
		LogLevel:     "info",
		Actions:      make(map[string][][]string),
		Shells:       make(map[string]string),
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "adbatch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "adbatch")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the config file at path (ConfigPath if empty), returning
// defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Actions == nil {
		cfg.Actions = make(map[string][][]string)
	}
	if cfg.Shells == nil {
		cfg.Shells = make(map[string]string)
	}
	return cfg, nil
}

// Save writes the config to path (ConfigPath if empty).
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Workspace returns the expanded workspace directory.
func (c *Config) Workspace() string {
	return expandHome(c.WorkspaceDir)
}

// ShellsDir returns the expanded directory scanned for extended shell scripts.
func (c *Config) ShellsDir() string {
	if c.ShellDir != "" {
		return expandHome(c.ShellDir)
	}
	return filepath.Join(c.Workspace(), "shells")
}

// Screenshots returns the expanded default screenshot directory.
func (c *Config) Screenshots() string {
	if c.ScreenshotDir != "" {
		return expandHome(c.ScreenshotDir)
	}
	return filepath.Join(c.Workspace(), "screenshots")
}

// ShellPaths returns the configured shells with ~ expanded.
func (c *Config) ShellPaths() map[string]string {
	out := make(map[string]string, len(c.Shells))
	for name, p := range c.Shells {
		out[name] = expandHome(p)
	}
	return out
}

// EnsureWorkspace creates the workspace directory.
func (c *Config) EnsureWorkspace() error {
	if err := os.MkdirAll(c.Workspace(), 0o755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, p[1:])
	}
	return p
}
