// Package config loads the YAML configuration of the linescan command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-linefind/measure/lines"
)

// DefaultTemplatePath is the bundled template file name.
const DefaultTemplatePath = "averaged fs signal filtered.csv"

// Config is the top-level configuration.
type Config struct {
	Template     string         `yaml:"template"`
	TemplateStep float64        `yaml:"template_step"`
	Threshold    float64        `yaml:"threshold"`
	Detector     DetectorConfig `yaml:"detector"`
	Synth        SynthConfig    `yaml:"synth"`
	Logging      LoggingConfig  `yaml:"logging"`
}

// DetectorConfig mirrors lines.Config.
type DetectorConfig struct {
	LineWidth       float64 `yaml:"line_width"`
	FilterOrder     int     `yaml:"filter_order"`
	LowCutRatio     float64 `yaml:"low_cut_ratio"`
	HighCutRatio    float64 `yaml:"high_cut_ratio"`
	SpikeIterations int     `yaml:"spike_iterations"`
}

// SynthConfig describes the synthetic spectrum scanned when no spectrum is
// supplied.
type SynthConfig struct {
	Points int       `yaml:"points"`
	Start  float64   `yaml:"start"`
	Stop   float64   `yaml:"stop"`
	Lines  []float64 `yaml:"lines"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Noise  float64   `yaml:"noise"`
	Seed   int64     `yaml:"seed"`
	Shape  string    `yaml:"shape"`

	// Baseline adds offset + slope*(f-start) under the lines.
	BaselineOffset float64 `yaml:"baseline_offset"`
	BaselineSlope  float64 `yaml:"baseline_slope"`
}

// LoggingConfig selects the log level and encoder.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	d := lines.DefaultConfig()
	return &Config{
		Template:     DefaultTemplatePath,
		TemplateStep: lines.DefaultTemplateStep,
		Threshold:    12,
		Detector: DetectorConfig{
			LineWidth:       d.LineWidth,
			FilterOrder:     d.FilterOrder,
			LowCutRatio:     d.LowCutRatio,
			HighCutRatio:    d.HighCutRatio,
			SpikeIterations: d.SpikeIterations,
		},
		Synth: SynthConfig{
			Points: 20001,
			Start:  118e9,
			Stop:   120e9,
			Lines:  []float64{118.4e9, 119.1e9, 119.65e9},
			Width:  3e5,
			Height: 1,
			Noise:  0.05,
			Seed:   1,
			Shape:  "gaussian",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if math.IsNaN(c.Threshold) || c.Threshold < 1 || c.Threshold > 1000 {
		errs = append(errs, fmt.Errorf("threshold %g outside [1, 1000]", c.Threshold))
	}
	if !(c.TemplateStep > 0) {
		errs = append(errs, fmt.Errorf("template_step must be > 0, got %g", c.TemplateStep))
	}
	if c.Detector.FilterOrder <= 0 {
		errs = append(errs, fmt.Errorf("detector.filter_order must be > 0, got %d", c.Detector.FilterOrder))
	}
	if !(c.Detector.LineWidth > 0) {
		errs = append(errs, fmt.Errorf("detector.line_width must be > 0, got %g", c.Detector.LineWidth))
	}
	if c.Detector.SpikeIterations < 0 {
		errs = append(errs, fmt.Errorf("detector.spike_iterations must be >= 0, got %d", c.Detector.SpikeIterations))
	}
	if c.Synth.Points < 2 {
		errs = append(errs, fmt.Errorf("synth.points must be >= 2, got %d", c.Synth.Points))
	}
	if !(c.Synth.Stop > c.Synth.Start) {
		errs = append(errs, fmt.Errorf("synth.stop %g must exceed synth.start %g", c.Synth.Stop, c.Synth.Start))
	}
	if !(c.Synth.Width > 0) {
		errs = append(errs, fmt.Errorf("synth.width must be > 0, got %g", c.Synth.Width))
	}
	switch c.Synth.Shape {
	case "", "gaussian", "lorentzian":
	default:
		errs = append(errs, fmt.Errorf("synth.shape %q not one of gaussian, lorentzian", c.Synth.Shape))
	}
	return errors.Join(errs...)
}

// DetectorOptions converts the detector section into lines options.
func (c *Config) DetectorOptions() []lines.Option {
	return []lines.Option{
		lines.WithConfig(lines.Config{
			LineWidth:       c.Detector.LineWidth,
			FilterOrder:     c.Detector.FilterOrder,
			LowCutRatio:     c.Detector.LowCutRatio,
			HighCutRatio:    c.Detector.HighCutRatio,
			SpikeIterations: c.Detector.SpikeIterations,
		}),
	}
}
