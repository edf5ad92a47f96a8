// Package config provides configuration loading and access for the simulations.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Life      LifeConfig      `yaml:"life"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// LifeConfig holds Game of Life parameters.
type LifeConfig struct {
	Scale          int     `yaml:"scale"`           // Pixels per cell
	UpdateInterval float64 `yaml:"update_interval"` // Seconds between generations
	IntervalStep   float64 `yaml:"interval_step"`   // Step applied by +/-
	ResizeDebounce float64 `yaml:"resize_debounce"` // Settle time before the grid follows the window
	InitialMode    string  `yaml:"initial_mode"`    // design, simulation or help
	Theme          string  `yaml:"theme"`
}

// HeadlessConfig holds the simulated frame parameters for runs without a window.
type HeadlessConfig struct {
	DT     float64 `yaml:"dt"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow    int     `yaml:"stats_window"`
	HistorySize    int     `yaml:"history_size"`
	PerfWindow     int     `yaml:"perf_window"`
	BoomMultiplier float64 `yaml:"boom_multiplier"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GridW int // Initial grid width in cells for the configured screen
	GridH int // Initial grid height in cells for the configured screen
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects values the simulations cannot run with.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Life.Scale <= 0 {
		return fmt.Errorf("life.scale %d must be positive", c.Life.Scale)
	}
	if c.Life.UpdateInterval < 0 {
		return fmt.Errorf("life.update_interval %v must not be negative", c.Life.UpdateInterval)
	}
	if c.Life.IntervalStep <= 0 {
		return fmt.Errorf("life.interval_step %v must be positive", c.Life.IntervalStep)
	}
	if c.Life.ResizeDebounce < 0 {
		return fmt.Errorf("life.resize_debounce %v must not be negative", c.Life.ResizeDebounce)
	}
	switch c.Life.InitialMode {
	case "design", "simulation", "help":
	default:
		return fmt.Errorf("life.initial_mode %q must be design, simulation or help", c.Life.InitialMode)
	}
	if c.Headless.DT <= 0 {
		return fmt.Errorf("headless.dt %v must be positive", c.Headless.DT)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry.stats_window %d must be positive", c.Telemetry.StatsWindow)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.GridW = (c.Screen.Width + c.Life.Scale - 1) / c.Life.Scale
	c.Derived.GridH = (c.Screen.Height + c.Life.Scale - 1) / c.Life.Scale

	// Headless viewport defaults to the screen size if not specified
	if c.Headless.Width <= 0 {
		c.Headless.Width = c.Screen.Width
	}
	if c.Headless.Height <= 0 {
		c.Headless.Height = c.Screen.Height
	}
	if c.Telemetry.HistorySize < 3 {
		c.Telemetry.HistorySize = 3
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
