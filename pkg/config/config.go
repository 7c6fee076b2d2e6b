// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/user/bouncer/pkg/orchestrator"
	"github.com/user/bouncer/pkg/ports"
	"gopkg.in/yaml.v3"
)

// MaxStrideAlign is the largest accepted row alignment in bytes.
const MaxStrideAlign = 4096

// Config represents the full configuration for bouncer.
// Motion and sphere parameters are fixed and not part of it.
type Config struct {
	// Output
	OutputDir   string `yaml:"output_dir"`
	StrideAlign int    `yaml:"stride_align"`
	Summary     string `yaml:"summary"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Output
		OutputDir:   ".",
		StrideAlign: 0,

		// Logging
		LogLevel: "info",

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.StrideAlign < 0 || c.StrideAlign > MaxStrideAlign {
		return fmt.Errorf("stride_align must be between 0 and %d, got %d", MaxStrideAlign, c.StrideAlign)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Level returns the effective log level.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(c.LogLevel)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputPath string) orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.InputPath = inputPath
	cfg.OutputDir = c.OutputDir
	cfg.StrideAlign = c.StrideAlign
	return cfg
}
