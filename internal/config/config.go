// Package config provides pipeline configuration: built-in defaults,
// optionally overridden by a YAML config file, then by command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmather/lhl-data/internal/game"
	"github.com/dmather/lhl-data/internal/scraper"
)

// Config holds every tunable the pipeline consumes.
type Config struct {
	BaseURL         string   `yaml:"base_url"`
	GroupID         int      `yaml:"group_id"`
	StandingsURL    string   `yaml:"standings_url"`
	SeasonStartYear int      `yaml:"season_start_year"`
	RolloverMonths  []string `yaml:"rollover_months"`
	Concurrency     int      `yaml:"concurrency"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
	ExportsDir      string   `yaml:"exports_dir"`
	DataDir         string   `yaml:"data_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:         scraper.DefaultBaseURL,
		GroupID:         scraper.DefaultGroupID,
		StandingsURL:    scraper.DefaultStandingsURL,
		SeasonStartYear: 2025,
		RolloverMonths:  game.DefaultRolloverMonths,
		Concurrency:     scraper.DefaultConcurrency,
		TimeoutSeconds:  int(scraper.DefaultTimeout / time.Second),
		ExportsDir:      "exports",
		DataDir:         "data",
	}
}

// DefaultPath returns the conventional config file location
// (~/.lhl-data/config.yaml), or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lhl-data", "config.yaml")
}

// Load reads a YAML config file over the defaults. With path == "" the
// conventional location is tried; a missing file there is not an error. An
// explicitly given path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
