// Package config handles loading and saving picbook configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/picbook/config.yaml
//
// The current tutorial index is never stored here; picbook always starts on
// the first lesson.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "picbook"

// MarkdownStyles lists the glamour standard styles accepted by ui.markdown_style.
var MarkdownStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// UIConfig holds UI preference settings.
type UIConfig struct {
	ShowTOC       *bool  `yaml:"show_toc,omitempty"`       // Sidebar visible at startup (default true)
	LineNumbers   bool   `yaml:"line_numbers,omitempty"`   // Number code sample lines
	MarkdownStyle string `yaml:"markdown_style,omitempty"` // glamour style name
}

// Config is the top-level configuration for picbook.
type Config struct {
	ContentPath string   `yaml:"content_path,omitempty"` // Optional YAML content file
	UI          UIConfig `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			MarkdownStyle: "auto",
		},
	}
}

// TOCVisible reports whether the sidebar starts open.
func (c Config) TOCVisible() bool {
	if c.UI.ShowTOC == nil {
		return true
	}
	return *c.UI.ShowTOC
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.UI.MarkdownStyle == "" {
		return nil
	}
	for _, s := range MarkdownStyles {
		if c.UI.MarkdownStyle == s {
			return nil
		}
	}
	return fmt.Errorf("ui.markdown_style %q: must be one of %s", c.UI.MarkdownStyle, strings.Join(MarkdownStyles, ", "))
}

// ConfigDir returns the XDG config directory for picbook.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.UI.MarkdownStyle == "" {
		cfg.UI.MarkdownStyle = "auto"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.ContentPath = expandHome(cfg.ContentPath)

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
