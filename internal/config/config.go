package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for the render configuration.
const (
	DefaultDensity     = 0.12
	DefaultSpeed       = 1.0
	DefaultLineMaxDist = 140.0
	DefaultTriMaxDist  = 90.0
	DefaultOpacity     = 0.6
	DefaultDotSize     = 1.6
)

// Config is the frozen render configuration. It is fixed at construction;
// Speed in particular applies at spawn time only and is never reapplied to
// particles already in flight.
type Config struct {
	// Density is the particle count per unit of surface area.
	Density float64 `toml:"density"`
	// Speed is a global velocity multiplier applied when particles spawn.
	Speed float64 `toml:"speed"`
	// LineMaxDist is the proximity threshold for drawing a line between a pair.
	LineMaxDist float64 `toml:"line_max_dist"`
	// TriMaxDist is the stricter threshold for triangle neighbor candidates.
	TriMaxDist float64 `toml:"tri_max_dist"`
	// Opacity is the base alpha for lines and dots.
	Opacity float64 `toml:"opacity"`
	// DotSize is the dot radius in CSS pixels.
	DotSize float64 `toml:"dot_size"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Density:     DefaultDensity,
		Speed:       DefaultSpeed,
		LineMaxDist: DefaultLineMaxDist,
		TriMaxDist:  DefaultTriMaxDist,
		Opacity:     DefaultOpacity,
		DotSize:     DefaultDotSize,
	}
}

// Normalize floors out-of-range values. Degenerate inputs (zero density,
// zero thresholds) stay valid: downstream math clamps rather than errors.
func (c Config) Normalize() Config {
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Speed < 0 {
		c.Speed = 0
	}
	if c.LineMaxDist < 0 {
		c.LineMaxDist = 0
	}
	if c.TriMaxDist < 0 {
		c.TriMaxDist = 0
	}
	if c.Opacity < 0 {
		c.Opacity = 0
	}
	if c.DotSize < 0 {
		c.DotSize = 0
	}
	return c
}

// LoadPreset reads a TOML preset file. Keys missing from the file keep their
// defaults; unknown keys are ignored.
func LoadPreset(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode preset %s: %w", path, err)
	}
	return c.Normalize(), nil
}
