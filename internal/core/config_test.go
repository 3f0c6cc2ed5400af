package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Tick != DefaultTick {
		t.Errorf("tick = %v, expected %v", cfg.Tick, DefaultTick)
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, expected 0 so the platform seeds from the clock", cfg.Seed)
	}
}
