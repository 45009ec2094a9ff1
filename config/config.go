// Package config provides configuration loading and access for the
// animation engine and its demo.
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
	Animation AnimationConfig `yaml:"animation"`
	Screen    ScreenConfig    `yaml:"screen"`
	Demo      DemoConfig      `yaml:"demo"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// AnimationConfig holds the process-wide animation tuning defaults,
// applied to animators that do not override a value at construction.
type AnimationConfig struct {
	Acceleration         float64 `yaml:"acceleration"`          // Drive strength toward target
	AccelerationModifier float64 `yaml:"acceleration_modifier"` // Curve shape, 1=circular, higher=parabolic
	Drag                 float64 `yaml:"drag"`                  // Input form; stored decay factor is 10^-drag
}

// ScreenConfig holds display settings for the demo window.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// DemoConfig holds parameters for the widget showcase.
type DemoConfig struct {
	Widgets          int     `yaml:"widgets"`           // Number of animated widgets
	RetargetInterval float64 `yaml:"retarget_interval"` // Seconds between automatic retargets
	Margin           float64 `yaml:"margin"`            // Screen-edge margin for random targets
	MinSize          float64 `yaml:"min_size"`          // Widget size range
	MaxSize          float64 `yaml:"max_size"`
	ScatterSpeed     float64 `yaml:"scatter_speed"` // Velocity kick for loose-mode scatter
}

// TelemetryConfig holds trace recording settings for headless runs.
type TelemetryConfig struct {
	SampleStride int `yaml:"sample_stride"` // Record every Nth tick (1 = all)
}

// global is the singleton configuration instance.
var global *Config

// Init loads the configuration into the package singleton. An empty path
// uses the embedded defaults only.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is Init for tests and tools that cannot proceed without config.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config init failed: %v", err))
	}
}

// Cfg returns the singleton configuration. Init must have been called.
func Cfg() *Config {
	if global == nil {
		panic("config.Cfg called before config.Init")
	}
	return global
}

// Load reads the embedded defaults and overlays an optional user file on
// top. Only fields present in the file overwrite defaults.
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
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML saves the configuration, so an experiment run can be
// reproduced from its output directory.
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
