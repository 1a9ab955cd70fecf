// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Render   RenderConfig   `toml:"render"`
	Template TemplateConfig `toml:"template"`
	UI       UIConfig       `toml:"ui"`
}

// RenderConfig holds frame rendering settings.
type RenderConfig struct {
	WidthCeiling int    `toml:"width_ceiling"` // full frame width ceiling, borders included
	BorderStyle  string `toml:"border_style"`  // "single" or "double"
	Ellipsis     bool   `toml:"ellipsis"`      // append … when truncating content lines
}

// TemplateConfig holds screen template settings.
type TemplateConfig struct {
	Dir             string `toml:"dir"`              // optional directory shadowing the bundled templates
	MissingVariable string `toml:"missing_variable"` // "error" or "empty"
}

// UIConfig holds CLI output settings.
type UIConfig struct {
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			WidthCeiling: 80, // what every bundled template assumes
			BorderStyle:  "single",
			Ellipsis:     true,
		},
		Template: TemplateConfig{
			Dir:             "",
			MissingVariable: "error",
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// DefaultInteriorWidth returns the default frame interior width: the ceiling
// minus the two border columns.
func (c *Config) DefaultInteriorWidth() int {
	return c.Render.WidthCeiling - 2
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "termframe", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TERMFRAME_WIDTH_CEILING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.WidthCeiling = n
		}
	}
	if v := os.Getenv("TERMFRAME_BORDER_STYLE"); v != "" {
		cfg.Render.BorderStyle = v
	}
	if v := os.Getenv("TERMFRAME_TEMPLATE_DIR"); v != "" {
		cfg.Template.Dir = v
	}
	if v := os.Getenv("TERMFRAME_MISSING_VARIABLE"); v != "" {
		cfg.Template.MissingVariable = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.Color = false
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Render.WidthCeiling < 3 {
		return fmt.Errorf("render.width_ceiling %d: too narrow for a bordered frame", c.Render.WidthCeiling)
	}
	switch strings.ToLower(c.Render.BorderStyle) {
	case "single", "double":
	default:
		return fmt.Errorf("render.border_style %q: must be \"single\" or \"double\"", c.Render.BorderStyle)
	}
	switch strings.ToLower(c.Template.MissingVariable) {
	case "", "error", "empty":
	default:
		return fmt.Errorf("template.missing_variable %q: must be \"error\" or \"empty\"", c.Template.MissingVariable)
	}
	if c.Template.Dir != "" {
		if info, err := os.Stat(c.TemplateDir()); err == nil && !info.IsDir() {
			return fmt.Errorf("template.dir %s: not a directory", c.Template.Dir)
		}
	}
	return nil
}

// TemplateDir returns the override directory with ~ expanded, or "".
func (c *Config) TemplateDir() string {
	if c.Template.Dir == "" {
		return ""
	}
	return expandPath(c.Template.Dir)
}

// Write writes the configuration to the given path in TOML format.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
