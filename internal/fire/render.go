package fire

import (
	"math/rand"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

// Renderer maps heat values onto themed screen cells. The glyph picks for
// multi-candidate bins come from the injected RNG, so rendering is part of
// the same deterministic stream as the simulation.
type Renderer struct {
	theme *theme.Theme
	rng   *rand.Rand
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(th *theme.Theme, rng *rand.Rand) *Renderer {
	return &Renderer{theme: th, rng: rng}
}

// Render draws the grid into the screen buffer, one cell per grid cell.
// The cell color is the theme's color bin index for the heat; the platform
// layer resolves bins to actual terminal colors. Cells outside the screen
// are dropped silently, so a briefly mismatched buffer renders a cropped
// frame instead of panicking.
func (r *Renderer) Render(g *Grid, dst *core.Screen) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			heat := g.At(x, y)
			dst.SetCell(x, y, core.Cell{
				Rune:  r.theme.Glyph(heat, r.rng),
				Color: uint8(r.theme.ColorBin(heat)),
			})
		}
	}
}
