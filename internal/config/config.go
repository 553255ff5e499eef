// Package config loads the demo application's optional YAML configuration.
// Flags override file values; absent files fall back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swipecal/swipecal/internal/window"
)

// Config is the on-disk configuration.
type Config struct {
	// Mode is the initial display mode: "week" or "month".
	Mode string `yaml:"mode"`
	// FirstWeekday names the weekday shown in column 0, e.g. "monday".
	FirstWeekday string `yaml:"first_weekday"`
	// PastDisabled makes days before today inert and styled as disabled.
	PastDisabled bool `yaml:"past_disabled"`
	// NoColor disables all color output.
	NoColor bool `yaml:"no_color"`
	// Lunar enables Chinese lunar day annotations.
	Lunar bool `yaml:"lunar"`
	// HolidaysFile points at a holidays JSON file; empty means the cache
	// location.
	HolidaysFile string `yaml:"holidays_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:         "month",
		FirstWeekday: "sunday",
	}
}

// DefaultPath returns the config file location in the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "swipecal", "config.yaml"), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// DisplayMode parses the Mode field.
func (c Config) DisplayMode() (window.Mode, error) {
	switch strings.ToLower(c.Mode) {
	case "", "month":
		return window.ModeMonth, nil
	case "week":
		return window.ModeWeek, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (expected week or month)", c.Mode)
	}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Weekday parses the FirstWeekday field.
func (c Config) Weekday() (time.Weekday, error) {
	if c.FirstWeekday == "" {
		return time.Sunday, nil
	}
	if d, ok := weekdays[strings.ToLower(c.FirstWeekday)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", c.FirstWeekday)
}
