// Package config handles the timetrail configuration file.
//
// Configuration lives in ~/.config/timetrail/config.yaml. Every field
// has a default, so running without a config file works; the file
// mostly exists to remap CSV column headers for localized tracker
// exports and to pin input/output paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Columns maps canonical record fields to the CSV header names used by
// the tracker export. Tracker apps localize their headers, so none of
// these are hardcoded in the ingestor.
type Columns struct {
	Date    string `yaml:"date"`
	Project string `yaml:"project"`
	Task    string `yaml:"task"`
	Minutes string `yaml:"minutes"`
	Note    string `yaml:"note"`
}

// Labels holds the placeholder category names substituted for blank
// project or task cells before bucketing.
type Labels struct {
	Project string `yaml:"project"`
	Task    string `yaml:"task"`
}

type Config struct {
	Input   string  `yaml:"input"`
	Output  string  `yaml:"output"`
	Store   string  `yaml:"store"`
	Columns Columns `yaml:"columns"`
	Labels  Labels  `yaml:"labels"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return Config{
		Input:  "time_entries.csv",
		Output: "total_review.xlsx",
		Store:  filepath.Join(home, ".config", "timetrail", "timetrail.db"),
		Columns: Columns{
			Date:    "start_date",
			Project: "project_name",
			Task:    "task_name",
			Minutes: "duration_min",
			Note:    "note",
		},
		Labels: Labels{
			Project: "Unspecified project",
			Task:    "Unspecified task",
		},
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Write saves cfg to path, creating parent directories as needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

func (c Config) validate() error {
	if c.Input == "" {
		return fmt.Errorf("input must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.Columns.Date == "" || c.Columns.Minutes == "" {
		return fmt.Errorf("columns.date and columns.minutes must not be empty")
	}
	if c.Labels.Project == "" || c.Labels.Task == "" {
		return fmt.Errorf("labels.project and labels.task must not be empty")
	}
	return nil
}
