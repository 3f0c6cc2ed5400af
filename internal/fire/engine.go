package fire

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
)

// Params tunes the flame shape. All ranges are inclusive on both ends.
type Params struct {
	// DecayMin/Max is how much heat a cell loses per frame as it rises.
	DecayMin int
	DecayMax int

	// FlickerMin/Max is the random turbulence added to or subtracted from
	// a cell each frame, with equal probability either way.
	FlickerMin int
	FlickerMax int

	// IgnitionHeatMin/Max is the heat a source cell jumps to when it
	// ignites.
	IgnitionHeatMin int
	IgnitionHeatMax int

	// IgnitionSharpness shapes how strongly ignition favors the middle of
	// the source row. Higher values pinch the flame base toward the
	// center; 0 ignites uniformly across the row.
	IgnitionSharpness float64

	// SourceDecayMin/Max is how much a source cell cools per frame when it
	// does not ignite.
	SourceDecayMin int
	SourceDecayMax int
}

// DefaultParams returns the tuning that produces the traditional flame.
func DefaultParams() Params {
	return Params{
		DecayMin:          15,
		DecayMax:          18,
		FlickerMin:        12,
		FlickerMax:        15,
		IgnitionHeatMin:   200,
		IgnitionHeatMax:   MaxHeat,
		IgnitionSharpness: 0.2,
		SourceDecayMin:    0,
		SourceDecayMax:    5,
	}
}

// Validate checks that all ranges are well-formed.
func (p Params) Validate() error {
	if err := checkRange("decay", p.DecayMin, p.DecayMax); err != nil {
		return err
	}
	if err := checkRange("flicker", p.FlickerMin, p.FlickerMax); err != nil {
		return err
	}
	if err := checkRange("ignition heat", p.IgnitionHeatMin, p.IgnitionHeatMax); err != nil {
		return err
	}
	if err := checkRange("source decay", p.SourceDecayMin, p.SourceDecayMax); err != nil {
		return err
	}
	if p.IgnitionSharpness < 0 {
		return fmt.Errorf("ignition sharpness must be non-negative, got %g", p.IgnitionSharpness)
	}
	return nil
}

func checkRange(name string, lo, hi int) error {
	if lo < 0 || lo > hi || hi > MaxHeat {
		return fmt.Errorf("%s range [%d, %d] must satisfy 0 <= min <= max <= %d", name, lo, hi, MaxHeat)
	}
	return nil
}

// Engine advances the heat field one frame at a time. All randomness comes
// from the injected RNG, so runs with the same seed, dimensions, and
// params produce identical frames.
type Engine struct {
	params Params
	rng    *rand.Rand
}

// NewEngine creates an engine with the given tuning. Params are assumed to
// have passed Validate.
func NewEngine(params Params, rng *rand.Rand) *Engine {
	return &Engine{params: params, rng: rng}
}

// Step computes the next frame from the previous one and returns it as a
// fresh grid. The input grid is read-only; every cell of the result is
// derived from the input, so mid-frame writes never feed back into the
// same frame.
func (e *Engine) Step(g *Grid) *Grid {
	next := NewGrid(g.W, g.H)

	// Interior rows, bottom-up: each cell inherits heat from the row
	// below, keeps a fraction of its own, and bleeds in from its side
	// neighbors. Edge columns simply lack one side contribution; heat
	// never wraps around.
	for y := g.H - 2; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			heat := satAdd(int(g.At(x, y+1))/2, int(g.At(x, y))/3)
			if x > 0 {
				heat = satAdd(heat, int(g.At(x-1, y))/8)
			}
			if x < g.W-1 {
				heat = satAdd(heat, int(g.At(x+1, y))/8)
			}

			// Cooling and turbulence are combined into one signed delta
			// and clamped once, so a cold cell stays exactly cold instead
			// of flickering above zero.
			delta := -e.randRange(e.params.DecayMin, e.params.DecayMax)
			flicker := e.randRange(e.params.FlickerMin, e.params.FlickerMax)
			if e.rng.Float64() < 0.5 {
				delta += flicker
			} else {
				delta -= flicker
			}
			next.Set(x, y, uint8(core.Clamp(heat+delta, 0, MaxHeat)))
		}
	}

	// Source row: cells ignite with a center-weighted probability, or
	// cool off from their previous value.
	if g.H > 0 {
		y := g.H - 1
		for x := 0; x < g.W; x++ {
			if e.rng.Float64() < e.ignitionProbability(x, g.W) {
				next.Set(x, y, uint8(e.randRange(e.params.IgnitionHeatMin, e.params.IgnitionHeatMax)))
			} else {
				cooled := int(g.At(x, y)) - e.randRange(e.params.SourceDecayMin, e.params.SourceDecayMax)
				next.Set(x, y, uint8(core.Clamp(cooled, 0, MaxHeat)))
			}
		}
	}

	return next
}

// ignitionProbability is highest mid-row and falls to zero at the left
// edge, shaped by the sharpness exponent.
func (e *Engine) ignitionProbability(x, width int) float64 {
	half := float64(width) / 2
	bias := 1 - math.Abs(float64(x)-half)/half
	return core.ClampF(math.Pow(bias, e.params.IgnitionSharpness), 0, 1)
}

// randRange returns a uniform value in [lo, hi], inclusive on both ends.
func (e *Engine) randRange(lo, hi int) int {
	return lo + e.rng.Intn(hi-lo+1)
}

// satAdd accumulates non-negative heat contributions, saturating at
// MaxHeat so stacked additions cannot overflow.
func satAdd(a, b int) int {
	if s := a + b; s < MaxHeat {
		return s
	}
	return MaxHeat
}
