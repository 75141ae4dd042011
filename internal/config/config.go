// Package config loads lsx configuration from a yaml file and provides the
// defaults the command-line flags override.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/lsx/internal/style"
)

// ConfigFileName is looked up in the listing directory and then in the
// user's home directory.
const ConfigFileName = ".lsx.yaml"

// Config represents lsx configuration options. Every option can also be set
// from the command line, which wins over the file.
type Config struct {
	// SizeFormat selects how sizes print: metric, binary, or raw
	SizeFormat string `yaml:"size_format"`

	// Sort is the default sort field: name, ext, or size
	Sort string `yaml:"sort"`

	// Reverse inverts the sort order
	Reverse bool `yaml:"reverse"`

	// Header shows the header row in details views
	Header bool `yaml:"header"`

	// ShowAll includes dotfiles in listings
	ShowAll bool `yaml:"show_all"`

	// Color controls colour output: auto, always, or never
	Color string `yaml:"color"`

	// TreeLevel caps tree recursion depth (0 = unlimited)
	TreeLevel int `yaml:"tree_level"`

	// LogLevel sets diagnostic verbosity when --debug is given
	LogLevel string `yaml:"log_level"`

	// Palette overrides category colours by name, e.g. "directory: cyan"
	Palette map[string]string `yaml:"palette"`
}

// DefaultConfig returns a Config with the stock behaviour.
func DefaultConfig() *Config {
	return &Config{
		SizeFormat: "metric",
		Sort:       "name",
		Color:      "auto",
		LogLevel:   "info",
	}
}

// LoadConfigFromDir reads the config file from dir, falling back to the
// home directory and then to defaults. A missing file is not an error; a
// malformed one is.
func LoadConfigFromDir(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildPalette resolves the palette for this config: plain when colours are
// off, otherwise the colourful defaults with any per-category overrides
// from the file applied on top.
func (c *Config) BuildPalette(coloured bool) (style.Palette, error) {
	if !coloured {
		return style.PlainPalette(), nil
	}

	palette := style.ColourfulPalette()
	for slot, name := range c.Palette {
		colour, err := style.ParseColour(name)
		if err != nil {
			return palette, fmt.Errorf("palette entry %q: %w", slot, err)
		}
		if err := palette.Override(slot, colour); err != nil {
			return palette, err
		}
	}
	return palette, nil
}
