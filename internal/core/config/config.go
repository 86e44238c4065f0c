// Package config handles configuration loading and validation for mddiff.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is absent or leaves fields unset.
const (
	DefaultGitPath = "git"
	DefaultUnified = 2000
	DefaultOutfile = "out.html"

	DefaultAddColor    = "#8d8"
	DefaultRemoveColor = "#d88"
)

// Highlight holds the CSS colors used for add/remove markup.
type Highlight struct {
	AddColor    string `yaml:"add_color"`
	RemoveColor string `yaml:"remove_color"`
}

// Config holds the application configuration.
type Config struct {
	// GitPath is the git binary invoked for --repo sources.
	GitPath string `yaml:"git_path"`
	// Unified is the number of context lines requested from git.
	Unified int `yaml:"unified"`
	// Outfile is the default output path; the CLI flag wins.
	Outfile string `yaml:"outfile"`
	// Template optionally overrides the embedded HTML template.
	Template  string    `yaml:"template"`
	Highlight Highlight `yaml:"highlight"`
	// Entities are extra Unicode-to-HTML-entity replacements merged
	// over the built-in table.
	Entities map[string]string `yaml:"entities"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		GitPath: DefaultGitPath,
		Unified: DefaultUnified,
		Outfile: DefaultOutfile,
		Highlight: Highlight{
			AddColor:    DefaultAddColor,
			RemoveColor: DefaultRemoveColor,
		},
	}
}

// Load reads the config file at configPath, applies defaults, and
// validates the result. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.GitPath == "" {
		c.GitPath = defaults.GitPath
	}
	if c.Unified == 0 {
		c.Unified = defaults.Unified
	}
	if c.Outfile == "" {
		c.Outfile = defaults.Outfile
	}
	if c.Highlight.AddColor == "" {
		c.Highlight.AddColor = defaults.Highlight.AddColor
	}
	if c.Highlight.RemoveColor == "" {
		c.Highlight.RemoveColor = defaults.Highlight.RemoveColor
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Unified < 0 {
		return fmt.Errorf("unified: must be positive, got %d", c.Unified)
	}
	if c.Highlight.AddColor == "" {
		return fmt.Errorf("highlight.add_color: must not be empty")
	}
	if c.Highlight.RemoveColor == "" {
		return fmt.Errorf("highlight.remove_color: must not be empty")
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); err != nil {
			return fmt.Errorf("template: %w", err)
		}
	}
	return nil
}
