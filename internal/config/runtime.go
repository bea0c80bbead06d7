// Package config provides centralized configuration for arbeitszeit.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file, and ARBEITSZEIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/arbeitszeit/internal/errors"
	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// AppName is the application name used for config directories.
const AppName = "arbeitszeit"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Thresholds configures the minimum and maximum work policies.
	Thresholds ThresholdConfig

	// Display configures refresh timing of the interactive screen.
	Display DisplayConfig
}

// ThresholdConfig holds the work-duration policy.
type ThresholdConfig struct {
	// MinimumWork is the work time of the minimum threshold.
	// Default: 7h36m (7.6 hours)
	MinimumWork time.Duration

	// MaximumWork is the work time of the maximum threshold.
	// Default: 9h
	MaximumWork time.Duration

	// Break is added to both thresholds.
	// Default: 30m
	Break time.Duration
}

// DisplayConfig holds timing for the presentation layer.
type DisplayConfig struct {
	// TickInterval is the countdown refresh period.
	// Default: 1s
	TickInterval time.Duration

	// TransitionDelay is how long results stay dimmed after the start time changes.
	// Default: 500ms
	TransitionDelay time.Duration
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Thresholds: ThresholdConfig{
			MinimumWork: model.DefaultMinimumWork,
			MaximumWork: model.DefaultMaximumWork,
			Break:       model.DefaultBreak,
		},
		Display: DisplayConfig{
			TickInterval:    time.Second,
			TransitionDelay: 500 * time.Millisecond,
		},
	}
}

// ThresholdPolicies returns the configured policies in display order.
func (c *RuntimeConfig) ThresholdPolicies() []model.Threshold {
	return []model.Threshold{
		{Kind: model.ThresholdMinimum, Work: c.Thresholds.MinimumWork, Break: c.Thresholds.Break},
		{Kind: model.ThresholdMaximum, Work: c.Thresholds.MaximumWork, Break: c.Thresholds.Break},
	}
}

// Validate checks that every duration is usable.
func (c *RuntimeConfig) Validate() error {
	checks := []struct {
		name  string
		value time.Duration
		zero  bool
	}{
		{"thresholds.minimum_work", c.Thresholds.MinimumWork, false},
		{"thresholds.maximum_work", c.Thresholds.MaximumWork, false},
		{"thresholds.break", c.Thresholds.Break, true},
		{"display.tick_interval", c.Display.TickInterval, false},
		{"display.transition_delay", c.Display.TransitionDelay, true},
	}
	for _, check := range checks {
		if check.value < 0 || (!check.zero && check.value == 0) {
			return errors.InvalidInput(errors.ErrInvalidConfig, check.name, check.value.String())
		}
	}
	if c.Thresholds.MaximumWork < c.Thresholds.MinimumWork {
		return &errors.UserError{
			Message:    "maximum work time is shorter than minimum work time",
			Suggestion: errors.Suggestions[errors.ErrInvalidConfig],
			Cause:      errors.ErrInvalidConfig,
		}
	}
	return nil
}

// DefaultPath returns the config file location following the XDG base directory layout.
// ARBEITSZEIT_CONFIG overrides it.
func DefaultPath() string {
	if v := os.Getenv("ARBEITSZEIT_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load resolves defaults, the YAML file at path (skipped when it does not
// exist) and environment overrides, then validates the result.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileConfig is the on-disk YAML shape. Durations use Go syntax ("7h36m").
type fileConfig struct {
	Thresholds struct {
		MinimumWork string `yaml:"minimum_work,omitempty"`
		MaximumWork string `yaml:"maximum_work,omitempty"`
		Break       string `yaml:"break,omitempty"`
	} `yaml:"thresholds"`
	Display struct {
		TickInterval    string `yaml:"tick_interval,omitempty"`
		TransitionDelay string `yaml:"transition_delay,omitempty"`
	} `yaml:"display"`
}

// loadFile applies values from a YAML file. Unlike environment variables,
// a malformed value in the file is reported rather than ignored.
func (c *RuntimeConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewSystemErrorWithOp("read", fmt.Sprintf("cannot read config file %s", path), err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &errors.UserError{
			Message:    fmt.Sprintf("cannot parse config file %s: %v", path, err),
			Suggestion: errors.Suggestions[errors.ErrInvalidConfig],
			Cause:      errors.ErrInvalidConfig,
		}
	}

	fields := []struct {
		name   string
		value  string
		target *time.Duration
	}{
		{"thresholds.minimum_work", fc.Thresholds.MinimumWork, &c.Thresholds.MinimumWork},
		{"thresholds.maximum_work", fc.Thresholds.MaximumWork, &c.Thresholds.MaximumWork},
		{"thresholds.break", fc.Thresholds.Break, &c.Thresholds.Break},
		{"display.tick_interval", fc.Display.TickInterval, &c.Display.TickInterval},
		{"display.transition_delay", fc.Display.TransitionDelay, &c.Display.TransitionDelay},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		d, err := time.ParseDuration(f.value)
		if err != nil {
			return errors.InvalidInput(errors.ErrInvalidDuration, f.name, f.value)
		}
		*f.target = d
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
// Unparseable values are ignored.
func (c *RuntimeConfig) loadFromEnv() {
	envDurations := []struct {
		key    string
		target *time.Duration
	}{
		{"ARBEITSZEIT_MIN_WORK", &c.Thresholds.MinimumWork},
		{"ARBEITSZEIT_MAX_WORK", &c.Thresholds.MaximumWork},
		{"ARBEITSZEIT_BREAK", &c.Thresholds.Break},
		{"ARBEITSZEIT_TICK_INTERVAL", &c.Display.TickInterval},
		{"ARBEITSZEIT_TRANSITION_DELAY", &c.Display.TransitionDelay},
	}
	for _, e := range envDurations {
		if v := os.Getenv(e.key); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*e.target = d
			}
		}
	}
}

// YAML renders the effective configuration in the file format.
func (c *RuntimeConfig) YAML() ([]byte, error) {
	var fc fileConfig
	fc.Thresholds.MinimumWork = c.Thresholds.MinimumWork.String()
	fc.Thresholds.MaximumWork = c.Thresholds.MaximumWork.String()
	fc.Thresholds.Break = c.Thresholds.Break.String()
	fc.Display.TickInterval = c.Display.TickInterval.String()
	fc.Display.TransitionDelay = c.Display.TransitionDelay.String()
	return yaml.Marshal(&fc)
}
