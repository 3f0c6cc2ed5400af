// Package theme maps heat intensities to terminal appearance. A theme is a
// glyph ramp plus a color ramp: hotter cells index further into each ramp.
// Themes register themselves in init() functions, allowing the platform to
// discover them without hardcoded dependencies.
package theme

import (
	"fmt"
	"math/rand"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
)

// maxHeat is the hottest representable cell intensity.
const maxHeat = 255

// Theme describes how heat values turn into styled characters.
// Glyphs is a ramp of bins ordered from coolest to hottest; each bin holds
// one or more candidate runes, and the renderer picks one per cell per
// frame. Colors is a separate ramp of terminal color specs (hex like
// "#ff4b32" or ANSI like "208") resolved by the platform layer.
//
// Themes are shared configuration data. Callers must not mutate them after
// registration.
type Theme struct {
	Name   string
	Glyphs [][]rune
	Colors []string
}

// GlyphBin returns the index into the glyph ramp for the given heat.
// Heat 0 always maps to the first bin and maxHeat to the last.
func (t *Theme) GlyphBin(heat uint8) int {
	return rampBin(heat, len(t.Glyphs))
}

// ColorBin returns the index into the color ramp for the given heat.
func (t *Theme) ColorBin(heat uint8) int {
	return rampBin(heat, len(t.Colors))
}

// rampBin maps heat onto one of n bins spread evenly over the heat range.
func rampBin(heat uint8, n int) int {
	idx := int(float64(heat) / maxHeat * float64(n-1))
	return core.Clamp(idx, 0, n-1)
}

// Glyph picks the rune to draw for the given heat. Bins with a single
// candidate always yield that candidate; larger bins pick uniformly at
// random so equally hot cells shimmer independently.
func (t *Theme) Glyph(heat uint8, rng *rand.Rand) rune {
	bin := t.Glyphs[t.GlyphBin(heat)]
	if len(bin) == 1 {
		return bin[0]
	}
	return bin[rng.Intn(len(bin))]
}

// Validate checks that the theme has usable ramps.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	if len(t.Glyphs) == 0 {
		return fmt.Errorf("theme %q has no glyph bins", t.Name)
	}
	for i, bin := range t.Glyphs {
		if len(bin) == 0 {
			return fmt.Errorf("theme %q: glyph bin %d is empty", t.Name, i)
		}
	}
	if len(t.Colors) == 0 {
		return fmt.Errorf("theme %q has no colors", t.Name)
	}
	for i, c := range t.Colors {
		if c == "" {
			return fmt.Errorf("theme %q: color %d is empty", t.Name, i)
		}
	}
	return nil
}
