// Package config provides YAML-based configuration loading for the
// fireplace: simulation tuning, frame timing, theme selection, and
// user-defined themes.
package config

import (
	"fmt"
	"time"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/fire"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

// Config is the root configuration document.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Theme      string           `yaml:"theme"`
	Themes     []ThemeConfig    `yaml:"themes"`
}

// SimulationConfig tunes the heat engine and the frame clock.
type SimulationConfig struct {
	TickMS      int            `yaml:"tick_ms"`
	Decay       RangeConfig    `yaml:"decay"`
	Flicker     RangeConfig    `yaml:"flicker"`
	Ignition    IgnitionConfig `yaml:"ignition"`
	SourceDecay RangeConfig    `yaml:"source_decay"`
}

// RangeConfig is an inclusive integer range.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// IgnitionConfig tunes the source row.
type IgnitionConfig struct {
	HeatMin   int     `yaml:"heat_min"`
	HeatMax   int     `yaml:"heat_max"`
	Sharpness float64 `yaml:"sharpness"`
}

// ThemeConfig is a user-defined theme. Each glyphs entry is one heat bin,
// coolest first; every rune of the entry is a candidate glyph for that bin.
type ThemeConfig struct {
	Name   string   `yaml:"name"`
	Glyphs []string `yaml:"glyphs"`
	Colors []string `yaml:"colors"`
}

// Params converts the simulation section into engine tuning.
func (c Config) Params() fire.Params {
	return fire.Params{
		DecayMin:          c.Simulation.Decay.Min,
		DecayMax:          c.Simulation.Decay.Max,
		FlickerMin:        c.Simulation.Flicker.Min,
		FlickerMax:        c.Simulation.Flicker.Max,
		IgnitionHeatMin:   c.Simulation.Ignition.HeatMin,
		IgnitionHeatMax:   c.Simulation.Ignition.HeatMax,
		IgnitionSharpness: c.Simulation.Ignition.Sharpness,
		SourceDecayMin:    c.Simulation.SourceDecay.Min,
		SourceDecayMax:    c.Simulation.SourceDecay.Max,
	}
}

// TickInterval returns the frame interval, falling back to the default for
// non-positive values.
func (c Config) TickInterval() time.Duration {
	if c.Simulation.TickMS <= 0 {
		return core.DefaultTick
	}
	return time.Duration(c.Simulation.TickMS) * time.Millisecond
}

// ThemeName returns the configured theme, or the default when unset.
func (c Config) ThemeName() string {
	if c.Theme == "" {
		return theme.DefaultName
	}
	return c.Theme
}

// Validate checks the simulation tuning.
func (c Config) Validate() error {
	return c.Params().Validate()
}

// Theme converts a user theme definition into a registrable theme.
func (tc ThemeConfig) Theme() (*theme.Theme, error) {
	t := &theme.Theme{
		Name:   tc.Name,
		Glyphs: make([][]rune, 0, len(tc.Glyphs)),
		Colors: tc.Colors,
	}
	for _, bin := range tc.Glyphs {
		t.Glyphs = append(t.Glyphs, []rune(bin))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// InstallThemes registers all user-defined themes, which may shadow
// built-ins of the same name.
func (c Config) InstallThemes() error {
	for _, tc := range c.Themes {
		t, err := tc.Theme()
		if err != nil {
			return fmt.Errorf("invalid theme %q: %w", tc.Name, err)
		}
		if err := theme.Install(t); err != nil {
			return fmt.Errorf("cannot install theme %q: %w", tc.Name, err)
		}
	}
	return nil
}
