package core

import "time"

// DefaultTick is the frame interval used when none is configured.
const DefaultTick = 60 * time.Millisecond

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The platform uses it to size the flame area and to seed
// deterministic runs.
type RuntimeConfig struct {
	ScreenW int           // Terminal width in characters
	ScreenH int           // Terminal height in characters
	Tick    time.Duration // Interval between simulation frames
	Seed    int64         // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0,
	}
}
