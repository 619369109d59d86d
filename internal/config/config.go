// Package config provides YAML-based configuration loading for digsim.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/vovakirdan/digsim/internal/sim"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Glyph sets for grid visualisation.
const (
	GlyphsEmoji = "emoji"
	GlyphsASCII = "ascii"
)

// Colour modes for ascii visualisation.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for a digsim run.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
}

// SimulationConfig defines the simulated window.
type SimulationConfig struct {
	Size    int `yaml:"size"`
	Padding int `yaml:"padding"`
}

// OutputConfig defines how results are presented.
type OutputConfig struct {
	Precision int    `yaml:"precision"` // Decimal places for metrics
	Glyphs    string `yaml:"glyphs"`    // "emoji" or "ascii"
	Color     string `yaml:"color"`     // "auto", "always" or "never"
}

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Size:    sim.DefaultSize,
			Padding: sim.DefaultPadding,
		},
		Output: OutputConfig{
			Precision: 4,
			Glyphs:    GlyphsEmoji,
			Color:     ColorAuto,
		},
	}
}

// Sim returns the simulation window described by c.
func (c Config) Sim() sim.Config {
	return sim.Config{
		Size:    c.Simulation.Size,
		Padding: c.Simulation.Padding,
	}
}

// Validate checks every field of c.
func (c Config) Validate() error {
	if err := c.Sim().Validate(); err != nil {
		return fmt.Errorf("%w: simulation: %v", ErrInvalid, err)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 15 {
		return fmt.Errorf("%w: output.precision must be in [0, 15], got %d", ErrInvalid, c.Output.Precision)
	}
	switch c.Output.Glyphs {
	case GlyphsEmoji, GlyphsASCII:
	default:
		return fmt.Errorf("%w: output.glyphs must be %q or %q, got %q", ErrInvalid, GlyphsEmoji, GlyphsASCII, c.Output.Glyphs)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: output.color must be auto, always or never, got %q", ErrInvalid, c.Output.Color)
	}
	return nil
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultConfigYAML
}
