package config

import (
	_ "embed"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/config.yaml and serves as the base every loaded document is
// overlaid onto.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			TickMS:      60,
			Decay:       RangeConfig{Min: 15, Max: 18},
			Flicker:     RangeConfig{Min: 12, Max: 15},
			Ignition:    IgnitionConfig{HeatMin: 200, HeatMax: 255, Sharpness: 0.2},
			SourceDecay: RangeConfig{Min: 0, Max: 5},
		},
		Theme: theme.DefaultName,
	}
}
