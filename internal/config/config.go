// Package config loads the standup agent's YAML configuration.
//
// Secrets never live in the file: sources name the environment variable that
// holds their token and the value is read at fetch time.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLookbackDays = 1
	DefaultMaxRounds    = 20
	DefaultSnapshotPath = ".standup/last_standup.json"
	DefaultTokenBudget  = 2000
	DefaultGitHubAPI    = "https://api.github.com"
	DefaultTrackerAPI   = "https://api.linear.app/graphql"
)

type Config struct {
	// User is the code-host username whose activity is summarised.
	User         string `yaml:"user"`
	LookbackDays int    `yaml:"lookback_days"`
	// MaxRounds caps reconciliation rounds; -1 means unlimited, 0 or
	// absent selects the default.
	MaxRounds    int    `yaml:"max_rounds"`
	SnapshotPath string `yaml:"snapshot_path"`

	Classifier ClassifierConfig `yaml:"classifier"`
	Sources    SourcesConfig    `yaml:"sources"`
}

type ClassifierConfig struct {
	// Mode selects "rules" (deterministic, offline) or "llm" (Anthropic-backed
	// with rule fallback).
	Mode        string `yaml:"mode"`
	TokenBudget int    `yaml:"token_budget"`
}

type SourcesConfig struct {
	GitHub  GitHubConfig  `yaml:"github"`
	Tracker TrackerConfig `yaml:"tracker"`
	// Mock swaps in the canned offline source; useful without tokens.
	Mock bool `yaml:"mock"`
}

type GitHubConfig struct {
	Enabled     bool   `yaml:"enabled"`
	TokenEnvVar string `yaml:"token_env_var"`
	APIBase     string `yaml:"api_base"`
}

type TrackerConfig struct {
	Enabled     bool   `yaml:"enabled"`
	TokenEnvVar string `yaml:"token_env_var"`
	Endpoint    string `yaml:"endpoint"`
}

// Default returns the configuration used when no file exists: offline mock
// source, rule classifier.
func Default() Config {
	c := Config{
		Sources:    SourcesConfig{Mock: true},
		Classifier: ClassifierConfig{Mode: "rules"},
	}
	c.applyDefaults()
	return c
}

// Load reads and validates a YAML config file. A missing file returns
// Default() with no error; any other read or parse failure is returned.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.LookbackDays <= 0 {
		c.LookbackDays = DefaultLookbackDays
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	if c.SnapshotPath == "" {
		c.SnapshotPath = DefaultSnapshotPath
	}
	if c.Classifier.Mode == "" {
		c.Classifier.Mode = "rules"
	}
	if c.Classifier.TokenBudget <= 0 {
		c.Classifier.TokenBudget = DefaultTokenBudget
	}
	if c.Sources.GitHub.APIBase == "" {
		c.Sources.GitHub.APIBase = DefaultGitHubAPI
	}
	if c.Sources.GitHub.TokenEnvVar == "" {
		c.Sources.GitHub.TokenEnvVar = "GITHUB_TOKEN"
	}
	if c.Sources.Tracker.Endpoint == "" {
		c.Sources.Tracker.Endpoint = DefaultTrackerAPI
	}
	if c.Sources.Tracker.TokenEnvVar == "" {
		c.Sources.Tracker.TokenEnvVar = "TRACKER_TOKEN"
	}
}

func (c *Config) validate() error {
	switch c.Classifier.Mode {
	case "rules", "llm":
	default:
		return fmt.Errorf("config: unknown classifier mode %q", c.Classifier.Mode)
	}
	if (c.Sources.GitHub.Enabled || c.Sources.Tracker.Enabled) && c.User == "" {
		return fmt.Errorf("config: user is required when a live source is enabled")
	}
	return nil
}
