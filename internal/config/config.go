// Package config loads the optional YAML file holding default display
// preferences. The file only saves retyping --timezone and friends, and
// command-line flags always override it. Display preferences themselves
// are never written back: they live for a single run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the display preferences the user can predeclare.
type Config struct {
	// Timezone is the IANA zone used for session display (e.g. "Europe/Berlin").
	// Empty means detect the runtime's local zone.
	Timezone string `yaml:"timezone"`

	// TimeFormat is "12" or "24".
	TimeFormat string `yaml:"time_format"`

	// PastRaces is "visible" or "hidden".
	PastRaces string `yaml:"past_races"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeFormat: "24",
		PastRaces:  "visible",
	}
}

// Normalize falls back to defaults for missing or unknown values.
func (c *Config) Normalize() {
	switch c.TimeFormat {
	case "12", "24":
	default:
		c.TimeFormat = "24"
	}
	switch c.PastRaces {
	case "visible", "hidden":
	default:
		c.PastRaces = "visible"
	}
}

// Load reads the YAML file at path. A missing file is not an error: the
// defaults apply. A present but malformed file is an error, since silently
// ignoring it would surprise the user.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}
