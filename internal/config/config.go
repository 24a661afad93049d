// Package config loads the claw configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Zero values fall back to the
// defaults applied by normalize.
type Config struct {
	Theme         string `yaml:"theme"`          // default | dark | light
	HistorySize   int    `yaml:"history_size"`   // input history ring capacity
	InputCapacity int    `yaml:"input_capacity"` // line editor buffer size
	Agent         string `yaml:"agent"`          // echo | anthropic
	Model         string `yaml:"model"`          // model identity for the agent
	NoColor       bool   `yaml:"no_color"`       // force monochrome output

	ActivityLog ActivityLogConfig `yaml:"activity_log"`
}

// ActivityLogConfig controls the JSONL activity log.
type ActivityLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.normalize()
	return cfg
}

// Path returns the config file location: CLAW_CONFIG when set,
// otherwise ~/.claw/config.yaml.
func Path() string {
	if p := os.Getenv("CLAW_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".claw", "config.yaml")
	}
	return filepath.Join(home, ".claw", "config.yaml")
}

// Load reads the config from Path().
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from the given path. A missing file yields
// the default configuration with no error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Theme == "" {
		c.Theme = "default"
	}
	if c.HistorySize == 0 {
		c.HistorySize = 50
	}
	if c.InputCapacity == 0 {
		c.InputCapacity = 1024
	}
	if c.Agent == "" {
		c.Agent = "echo"
	}
	if c.Model == "" {
		c.Model = "claude-sonnet-4-20250514"
	}
	if c.ActivityLog.Path == "" {
		c.ActivityLog.Path = filepath.Join(filepath.Dir(Path()), "activity.jsonl")
	}
}

func (c *Config) validate() error {
	switch c.Theme {
	case "default", "dark", "light":
	default:
		return fmt.Errorf("theme: unknown theme %q (want default, dark, or light)", c.Theme)
	}
	switch c.Agent {
	case "echo", "anthropic":
	default:
		return fmt.Errorf("agent: unknown agent %q (want echo or anthropic)", c.Agent)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size: must not be negative, got %d", c.HistorySize)
	}
	if c.InputCapacity < 0 {
		return fmt.Errorf("input_capacity: must not be negative, got %d", c.InputCapacity)
	}
	return nil
}
