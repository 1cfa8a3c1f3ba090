// Package config handles loading and saving user configuration for ivchecker.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Generations Generations `yaml:"generations"`
	Data        Data        `yaml:"data"`
	UI          UI          `yaml:"ui"`
}

// Generations bounds the game generations lookups accept.
type Generations struct {
	MostRecent   int `yaml:"most_recent"`
	MinSupported int `yaml:"min_supported"`
}

// Data selects where the game tables are read from. Empty fields fall back
// to the tables bundled with the binary.
type Data struct {
	Dir    string `yaml:"dir"`    // directory holding species.yaml, natures.yaml, characteristics.yaml
	SQLite string `yaml:"sqlite"` // database written by "ivchecker data export"
}

// UI holds presentation settings.
type UI struct {
	NeutralNatureSort string `yaml:"neutral_nature_sort"` // "alphabetical" or "statwise"
	Suggestions       int    `yaml:"suggestions"`         // close matches offered for unknown names
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Generations: Generations{MostRecent: 8, MinSupported: 3},
		UI:          UI{NeutralNatureSort: "alphabetical", Suggestions: 2},
	}
}

// Load reads a config file on top of the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	g := c.Generations
	if g.MinSupported < 1 || g.MostRecent < g.MinSupported {
		return fmt.Errorf("generations: min_supported %d and most_recent %d are out of order", g.MinSupported, g.MostRecent)
	}
	if c.Data.Dir != "" && c.Data.SQLite != "" {
		return errors.New("data: set at most one of dir and sqlite")
	}
	switch strings.ToLower(c.UI.NeutralNatureSort) {
	case "alphabetical", "statwise":
	default:
		return fmt.Errorf("ui: unknown neutral_nature_sort %q", c.UI.NeutralNatureSort)
	}
	if c.UI.Suggestions < 0 {
		return fmt.Errorf("ui: suggestions must not be negative, got %d", c.UI.Suggestions)
	}
	return nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ivchecker"), nil
}
