package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/fire"
)

var (
	flagTuneTicks  int
	flagTuneWidth  int
	flagTuneHeight int
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Run the simulation headless and plot heat statistics",
	Long: `Run the fire simulation without a UI and print heat statistics.

Useful when tweaking decay, flicker, and ignition values in the config:
the charts show how hot the flame burns and how far up the grid it
climbs, without having to eyeball the animation.

Examples:
  fireterm tune
  fireterm tune --ticks 5000
  fireterm tune --config ./my-fire.yaml --ticks 2000
  fireterm tune --seed 42 --width 40 --height 16`,
	Run: runTune,
}

func init() {
	tuneCmd.Flags().IntVar(&flagTuneTicks, "ticks", 1000, "Number of simulation steps to run")
	tuneCmd.Flags().IntVar(&flagTuneWidth, "width", 60, "Grid width in cells")
	tuneCmd.Flags().IntVar(&flagTuneHeight, "height", 20, "Grid height in cells")
}

func runTune(_ *cobra.Command, _ []string) {
	th, params, _ := loadSetup()

	ticks := core.Max(flagTuneTicks, 1)
	width := core.Max(flagTuneWidth, 1)
	height := core.Max(flagTuneHeight, 2)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	engine := fire.NewEngine(params, rng)

	grid := fire.NewGrid(width, height)
	meanHist := make([]float64, 0, ticks)
	for i := 0; i < ticks; i++ {
		grid = engine.Step(grid)
		meanHist = append(meanHist, fire.Mean(grid))
	}

	fmt.Printf("Simulated %d ticks on a %dx%d grid (seed %d)\n\n", ticks, width, height, seed)

	graph := asciigraph.Plot(meanHist,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean heat per tick"),
	)
	fmt.Println(graph)
	fmt.Println()

	// Row profile of the final grid, source row last
	profile := make([]float64, 0, height)
	for y := 0; y < height; y++ {
		profile = append(profile, fire.RowMean(grid, y))
	}
	profileGraph := asciigraph.Plot(profile,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean heat by row (top to bottom)"),
	)
	fmt.Println(profileGraph)
	fmt.Println()

	// Final frame, rendered as plain glyphs so it survives piping
	screen := core.NewScreen(width, height)
	renderer := fire.NewRenderer(th, rng)
	renderer.Render(grid, screen)
	fmt.Println("Final frame:")
	fmt.Println(screen.String())
}
