// Package config loads horta's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/horta/internal/constants"
)

// Config is the complete configuration file
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Garden   GardenConfig   `yaml:"garden"`
	Calendar CalendarConfig `yaml:"calendar"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
	// Dir holds the logs/ directory
	Dir string `yaml:"dir"`
}

type GardenConfig struct {
	// StrictStreaks only moves a streak when a habit actually changes state
	StrictStreaks bool `yaml:"strict_streaks"`
	// RecomputeOnDelete re-derives a plant after one of its habits is deleted
	RecomputeOnDelete bool `yaml:"recompute_on_delete"`
	// SeedFile replaces the built-in starting garden when set
	SeedFile string `yaml:"seed_file"`
}

type CalendarConfig struct {
	// Timezone is an IANA name, or "Local"
	Timezone string `yaml:"timezone"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Dir: constants.DefaultLogDir,
		},
		Calendar: CalendarConfig{
			Timezone: "Local",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(ExpandHome(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.Log.Dir = ExpandHome(cfg.Log.Dir)
	cfg.Garden.SeedFile = ExpandHome(cfg.Garden.SeedFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Log.Dir == "" {
		return fmt.Errorf("log.dir is required")
	}
	if _, err := LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	return nil
}

// Location resolves the configured calendar timezone
func (c *Config) Location() *time.Location {
	loc, err := LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// LoadLocation loads an IANA timezone. Empty and "Local" mean the system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
