package fire

import (
	"math/rand"
	"testing"
)

func newTestEngine(seed int64, params Params) *Engine {
	return NewEngine(params, rand.New(rand.NewSource(seed)))
}

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("DefaultParams should validate, got %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		valid  bool
	}{
		{"defaults", func(p *Params) {}, true},
		{"decay min above max", func(p *Params) { p.DecayMin = 20; p.DecayMax = 10 }, false},
		{"negative flicker", func(p *Params) { p.FlickerMin = -1 }, false},
		{"ignition heat above limit", func(p *Params) { p.IgnitionHeatMax = 300 }, false},
		{"source decay min above max", func(p *Params) { p.SourceDecayMin = 6; p.SourceDecayMax = 2 }, false},
		{"negative sharpness", func(p *Params) { p.IgnitionSharpness = -0.5 }, false},
		{"zero sharpness", func(p *Params) { p.IgnitionSharpness = 0 }, true},
		{"fixed ranges", func(p *Params) {
			p.DecayMin, p.DecayMax = 16, 16
			p.FlickerMin, p.FlickerMax = 0, 0
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			err := p.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestStepDeterminism(t *testing.T) {
	// Same seed, dimensions, and params must produce identical frames
	seed := int64(12345)
	e1 := newTestEngine(seed, DefaultParams())
	e2 := newTestEngine(seed, DefaultParams())

	g1 := NewGrid(40, 16)
	g2 := NewGrid(40, 16)

	for i := 0; i < 100; i++ {
		g1 = e1.Step(g1)
		g2 = e2.Step(g2)
		if !g1.Equal(g2) {
			t.Fatalf("frames diverged at tick %d despite identical seeds", i)
		}
	}
}

func TestStepSeedsDiffer(t *testing.T) {
	e1 := newTestEngine(1, DefaultParams())
	e2 := newTestEngine(2, DefaultParams())

	g1 := NewGrid(40, 16)
	g2 := NewGrid(40, 16)

	for i := 0; i < 10; i++ {
		g1 = e1.Step(g1)
		g2 = e2.Step(g2)
	}

	if g1.Equal(g2) {
		t.Error("different seeds should produce different flames")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(42, DefaultParams())

	g := NewGrid(10, 6)
	g.Set(5, 2, 240)
	before := make([]uint8, len(g.Cells))
	copy(before, g.Cells)

	next := e.Step(g)

	if next == g {
		t.Fatal("Step should return a fresh grid, not the input")
	}
	for i, heat := range g.Cells {
		if heat != before[i] {
			t.Fatalf("Step mutated input grid at index %d: %d -> %d", i, before[i], heat)
		}
	}
}

func TestStepColdInterior(t *testing.T) {
	// A cold grid must stay cold everywhere except the source row: the
	// turbulence delta is folded into the cooling delta before clamping,
	// so zero-heat cells cannot flicker above zero.
	e := newTestEngine(7, DefaultParams())

	g := e.Step(NewGrid(5, 3))

	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != 0 {
				t.Errorf("interior cell (%d, %d) = %d, expected 0", x, y, g.At(x, y))
			}
		}
	}

	// Source cells either ignited into the configured band or stayed cold
	for x := 0; x < g.W; x++ {
		heat := g.At(x, g.H-1)
		if heat != 0 && heat < 200 {
			t.Errorf("source cell %d = %d, expected 0 or within the ignition band", x, heat)
		}
	}
}

func TestStepLocality(t *testing.T) {
	// One hot cell can only reach the cell above it, its side neighbors,
	// and itself within a single frame. No wraparound across edges.
	e := newTestEngine(3, DefaultParams())

	g := NewGrid(7, 6)
	g.Set(3, 2, 255)

	next := e.Step(g)

	reachable := map[[2]int]bool{
		{3, 1}: true, // directly above
		{2, 2}: true, // left neighbor
		{3, 2}: true, // the cell itself
		{4, 2}: true, // right neighbor
	}

	for y := 0; y < next.H-1; y++ {
		for x := 0; x < next.W; x++ {
			if reachable[[2]int{x, y}] {
				continue
			}
			if next.At(x, y) != 0 {
				t.Errorf("cell (%d, %d) = %d, heat escaped its neighborhood", x, y, next.At(x, y))
			}
		}
	}
}

func TestStepAttenuation(t *testing.T) {
	// Heat must thin out as it rises: over time the top row stays much
	// cooler than the source row.
	e := newTestEngine(99, DefaultParams())

	g := NewGrid(20, 10)
	for i := 0; i < 200; i++ {
		g = e.Step(g)
	}

	var topSum, bottomSum float64
	for i := 0; i < 100; i++ {
		g = e.Step(g)
		topSum += RowMean(g, 0)
		bottomSum += RowMean(g, g.H-1)
	}

	if topSum >= bottomSum {
		t.Errorf("top row heat (%f) should stay below source row heat (%f)", topSum, bottomSum)
	}
}

func TestStepSaturation(t *testing.T) {
	// With cooling disabled and every source cell igniting at MaxHeat, the
	// fire converges to a stable maximum: interior columns pin at exactly
	// MaxHeat, while edge columns settle slightly below it because they
	// lack one side contribution. Wrapped-around arithmetic would surface
	// here as small values instead.
	params := Params{
		DecayMin: 0, DecayMax: 0,
		FlickerMin: 0, FlickerMax: 0,
		IgnitionHeatMin: MaxHeat, IgnitionHeatMax: MaxHeat,
		IgnitionSharpness: 0,
		SourceDecayMin:    0, SourceDecayMax: 0,
	}
	if err := params.Validate(); err != nil {
		t.Fatalf("params should validate: %v", err)
	}

	e := newTestEngine(5, params)
	g := NewGrid(10, 6)
	for i := 0; i < 100; i++ {
		g = e.Step(g)
	}

	for y := 0; y < g.H; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.At(x, y) != MaxHeat {
				t.Errorf("cell (%d, %d) = %d, expected %d", x, y, g.At(x, y), MaxHeat)
			}
		}
		for _, x := range []int{0, g.W - 1} {
			if heat := g.At(x, y); heat < 190 {
				t.Errorf("edge cell (%d, %d) = %d, expected near-maximum heat", x, y, heat)
			}
		}
	}
}

func TestStepNoIgnition(t *testing.T) {
	// Ignition heat of zero makes the source row inert: the whole grid
	// stays identically cold forever.
	params := DefaultParams()
	params.IgnitionHeatMin = 0
	params.IgnitionHeatMax = 0

	e := newTestEngine(11, params)
	g := NewGrid(12, 5)
	cold := NewGrid(12, 5)

	for i := 0; i < 50; i++ {
		g = e.Step(g)
		if !g.Equal(cold) {
			t.Fatalf("grid warmed up at tick %d without a heat source", i)
		}
	}
}

func TestSourceRowDecay(t *testing.T) {
	// An extreme sharpness drives ignition probability to zero everywhere
	// on an odd-width row (no column sits exactly at center), leaving
	// only the cooling path.
	params := DefaultParams()
	params.IgnitionSharpness = 1e6

	tests := []struct {
		name     string
		min, max int
		lo, hi   uint8
	}{
		{"default band", 5, 10, 90, 95},
		{"disabled", 0, 0, 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := params
			p.SourceDecayMin = tc.min
			p.SourceDecayMax = tc.max
			e := newTestEngine(21, p)

			// Single-row grid: the source row is the whole fire
			g := NewGrid(5, 1)
			for x := 0; x < g.W; x++ {
				g.Set(x, 0, 100)
			}

			next := e.Step(g)
			for x := 0; x < next.W; x++ {
				heat := next.At(x, 0)
				if heat < tc.lo || heat > tc.hi {
					t.Errorf("source cell %d = %d, expected within [%d, %d]", x, heat, tc.lo, tc.hi)
				}
			}
		})
	}
}

func TestSourceRowDecayClampsAtZero(t *testing.T) {
	params := DefaultParams()
	params.IgnitionSharpness = 1e6
	params.SourceDecayMin = 50
	params.SourceDecayMax = 50

	e := newTestEngine(8, params)
	g := NewGrid(5, 1)
	for x := 0; x < g.W; x++ {
		g.Set(x, 0, 30) // less than one frame of cooling
	}

	next := e.Step(g)
	for x := 0; x < next.W; x++ {
		if next.At(x, 0) != 0 {
			t.Errorf("source cell %d = %d, expected cooling to clamp at 0", x, next.At(x, 0))
		}
	}
}

func TestIgnitionProbabilityShape(t *testing.T) {
	e := newTestEngine(1, DefaultParams())

	width := 10
	if p := e.ignitionProbability(width/2, width); p != 1 {
		t.Errorf("center probability = %f, expected 1", p)
	}
	if p := e.ignitionProbability(0, width); p != 0 {
		t.Errorf("left edge probability = %f, expected 0", p)
	}

	// Strictly increasing up to the center column. Every column on this
	// side sits at a distinct distance from the center, so equal
	// probabilities mean the bias curve went flat.
	prev := e.ignitionProbability(0, width)
	for x := 1; x <= width/2; x++ {
		p := e.ignitionProbability(x, width)
		if p <= prev {
			t.Errorf("probability flat or dipped at column %d: %f <= %f", x, p, prev)
		}
		if p < 0 || p > 1 {
			t.Errorf("probability at column %d = %f, outside [0, 1]", x, p)
		}
		prev = p
	}

	// Strictly decreasing past the center
	for x := width/2 + 1; x < width; x++ {
		p := e.ignitionProbability(x, width)
		if p >= prev {
			t.Errorf("probability flat or rose past center at column %d: %f >= %f", x, p, prev)
		}
		prev = p
	}
}

func TestStepDegenerateDimensions(t *testing.T) {
	e := newTestEngine(1, DefaultParams())

	for _, dims := range [][2]int{{0, 0}, {5, 0}, {0, 5}, {1, 1}} {
		g := NewGrid(dims[0], dims[1])
		next := e.Step(g) // must not panic
		if next.W != dims[0] || next.H != dims[1] {
			t.Errorf("Step changed dimensions: %dx%d -> %dx%d", dims[0], dims[1], next.W, next.H)
		}
	}
}
