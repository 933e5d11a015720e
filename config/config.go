// Package config loads the optional texty config file. Every knob has a
// working default, so a missing file is the normal case.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bulga138/texty/toml"
)

type Config struct {
	TabStop          int  // width of a tab stop in columns
	QuitTimes        int  // extra quit presses required with unsaved changes
	SearchIgnoreCase bool // case-insensitive Ctrl-F matching
	ShowLineNumbers  bool // line number gutter
	EnableLogger     bool // append diagnostics to texty.log
}

func DefaultConfig() *Config {
	return &Config{
		TabStop:          8,
		QuitTimes:        3,
		SearchIgnoreCase: true,
		ShowLineNumbers:  false,
		EnableLogger:     false,
	}
}

// ConfigPath returns the config file location, honoring XDG_CONFIG_HOME.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "texty", "config.toml"), nil
}

// LoadConfig reads the config file when present. The returned Config is
// always usable: on any problem it holds the defaults and the error says
// what was wrong with the file, so callers can surface it and keep going.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	root, err := toml.Parse(string(data))
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.apply(root)
	return cfg, nil
}

// apply copies recognized keys onto the config. Unknown keys are ignored
// and out-of-range values keep their defaults.
func (c *Config) apply(root map[string]any) {
	if t, ok := table(root, "editor"); ok {
		intKey(t, "tab_stop", &c.TabStop, 1, 64)
		intKey(t, "quit_times", &c.QuitTimes, 0, 9)
		boolKey(t, "show_line_numbers", &c.ShowLineNumbers)
	}
	if t, ok := table(root, "search"); ok {
		boolKey(t, "ignore_case", &c.SearchIgnoreCase)
	}
	if t, ok := table(root, "log"); ok {
		boolKey(t, "enabled", &c.EnableLogger)
	}
}

func table(root map[string]any, name string) (map[string]any, bool) {
	t, ok := root[name].(map[string]any)
	return t, ok
}

func intKey(t map[string]any, key string, dst *int, min, max int) {
	if n, ok := t[key].(int); ok && n >= min && n <= max {
		*dst = n
	}
}

func boolKey(t map[string]any, key string, dst *bool) {
	if b, ok := t[key].(bool); ok {
		*dst = b
	}
}

const configTemplate = `# texty configuration
# Missing keys keep their defaults; delete this file to reset everything.

[editor]
# Width of a tab stop in columns.
tab_stop = %d
# Extra Ctrl-Q presses needed to quit with unsaved changes.
quit_times = %d
# Draw a line number gutter (Ctrl-L toggles it at runtime).
show_line_numbers = %t

[search]
# Case-insensitive matching for Ctrl-F.
ignore_case = %t

[log]
# Append diagnostics to texty.log in the working directory.
enabled = %t
`

// SaveConfig writes cfg as a commented TOML file at ConfigPath, creating
// the directory if needed.
func SaveConfig(c *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data := fmt.Sprintf(configTemplate,
		c.TabStop, c.QuitTimes, c.ShowLineNumbers, c.SearchIgnoreCase, c.EnableLogger)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
