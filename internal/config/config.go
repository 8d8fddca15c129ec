// Package config loads tide's on-disk TOML configuration using
// github.com/spf13/viper and exposes the lookup surface the core needs:
// xkb layout, the ordered key-binding table, per-device scroll factors, and
// the workspace layout axis.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tidewm/tide/internal/core"
	"github.com/tidewm/tide/internal/keysym"
	"github.com/tidewm/tide/internal/shell"
)

// XKBConfig carries the xkbcommon layout fields the seat's keyboard object
// is created with.
type XKBConfig struct {
	Layout  string `mapstructure:"layout"`
	Variant string `mapstructure:"variant"`
	Model   string `mapstructure:"model"`
	Options string `mapstructure:"options"`
}

// InputConfig holds per-device and global pointer tuning.
type InputConfig struct {
	ScrollFactors map[string]float64 `mapstructure:"scroll_factors"`
}

// BindingConfig is one row of the on-disk key-binding table: a chord plus
// the action it runs, with action-specific arguments left as plain
// strings/ints so the TOML stays flat.
type BindingConfig struct {
	Modifiers []string `mapstructure:"modifiers"`
	Key       string   `mapstructure:"key"`
	Action    string   `mapstructure:"action"`
	Workspace int      `mapstructure:"workspace"`
	Direction string   `mapstructure:"direction"`
	Command   string   `mapstructure:"command"`
}

// Config is the full on-disk shape.
type Config struct {
	XKB             XKBConfig       `mapstructure:"xkb"`
	Input           InputConfig     `mapstructure:"input"`
	WorkspaceLayout string          `mapstructure:"workspace_layout"`
	Bindings        []BindingConfig `mapstructure:"bindings"`
}

// DefaultConfig is used whenever no config file is found or a key is
// missing from the one that is.
var DefaultConfig = Config{
	XKB: XKBConfig{Layout: "us"},
	Input: InputConfig{
		ScrollFactors: map[string]float64{},
	},
	WorkspaceLayout: "horizontal",
	Bindings:        DefaultBindings(),
}

var cfg *Config

// Init loads tide.toml from the system or user config directory, falling
// back to DefaultConfig for anything the file doesn't set.
func Init() error {
	viper.SetConfigName("tide")
	viper.SetConfigType("toml")

	viper.AddConfigPath("/etc/tide")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", "tide"))
	}
	viper.AddConfigPath(".")

	viper.SetDefault("xkb", DefaultConfig.XKB)
	viper.SetDefault("input", DefaultConfig.Input)
	viper.SetDefault("workspace_layout", DefaultConfig.WorkspaceLayout)
	viper.SetDefault("bindings", DefaultConfig.Bindings)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if len(cfg.Bindings) == 0 {
		cfg.Bindings = DefaultBindings()
	}
	return nil
}

// Get returns the loaded configuration, or DefaultConfig if Init was never
// called.
func Get() *Config {
	if cfg == nil {
		return &DefaultConfig
	}
	return cfg
}

// ConfigPath returns where Save writes to: the file Init loaded, if any;
// otherwise the system path when running as root, the per-user XDG path
// otherwise.
func ConfigPath() string {
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	if os.Geteuid() == 0 {
		return "/etc/tide/tide.toml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/etc/tide/tide.toml"
	}
	return filepath.Join(home, ".config", "tide", "tide.toml")
}

// Save writes the current configuration back to disk as TOML.
func Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// XKBConfig returns the loaded xkb layout settings.
func (c *Config) XKBConfig() XKBConfig {
	return c.XKB
}

// ScrollFactor returns the configured scroll multiplier for deviceID, or 1.0
// if it isn't listed.
func (c *Config) ScrollFactor(deviceID string) float64 {
	if f, ok := c.Input.ScrollFactors[deviceID]; ok {
		return f
	}
	return 1.0
}

// Layout returns the configured workspace arrangement axis, defaulting to
// horizontal for anything unrecognized.
func (c *Config) Layout() shell.WorkspaceLayout {
	if c.WorkspaceLayout == "vertical" {
		return shell.WorkspaceLayoutVertical
	}
	return shell.WorkspaceLayoutHorizontal
}

// KeyBindings resolves every configured row into a core.Binding, silently
// skipping any row whose action name or key name isn't recognized.
func (c *Config) KeyBindings() []core.Binding {
	out := make([]core.Binding, 0, len(c.Bindings))
	for _, b := range c.Bindings {
		binding, ok := resolveBinding(b)
		if !ok {
			continue
		}
		out = append(out, binding)
	}
	return out
}

func resolveBinding(b BindingConfig) (core.Binding, bool) {
	key, ok := keyByName(b.Key)
	if !ok {
		return core.Binding{}, false
	}
	action, ok := actionByName(b)
	if !ok {
		return core.Binding{}, false
	}
	pattern := keysym.KeyPattern{Modifiers: modifiersByName(b.Modifiers), Key: key}
	return core.Binding{Pattern: pattern, Action: action}, true
}

func modifiersByName(names []string) keysym.Modifiers {
	var m keysym.Modifiers
	for _, n := range names {
		switch n {
		case "ctrl":
			m.Ctrl = true
		case "alt":
			m.Alt = true
		case "logo", "super", "meta":
			m.Logo = true
		case "shift":
			m.Shift = true
		}
	}
	return m
}
