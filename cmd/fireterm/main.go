// fireterm renders a procedurally generated fireplace in the terminal.
//
// Usage:
//
//	fireterm                 - Watch the fire in the current terminal
//	fireterm watch           - Same, as an explicit verb
//	fireterm themes          - List available themes
//	fireterm serve           - Start SSH server for remote viewing
//	fireterm tune            - Run the simulation headless and plot statistics
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default: ~/.fireterm/config.yaml)
//	--theme <name>   - Theme to render with (default: from config, then "classic")
//	--seed <value>   - RNG seed for a reproducible flame (0 = random based on time)
//	--tick <ms>      - Frame interval in milliseconds (0 = from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagTheme  string
	flagSeed   int64
	flagTick   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fireterm",
	Short: "Fire in the Term - A cozy fireplace for your terminal",
	Long: `Fire in the Term draws an endlessly burning ASCII fireplace in your
terminal, with themeable glyph ramps and color palettes.

Running fireterm with no subcommand starts the fire right away.

Available commands:
  watch    - Watch the fire (same as running with no subcommand)
  themes   - Show all available themes
  serve    - Start SSH server so remote users can watch
  tune     - Run the simulation headless and plot heat statistics

Examples:
  fireterm
  fireterm --theme ember
  fireterm --seed 42 --tick 33
  fireterm serve --ssh :2222
  fireterm tune --ticks 5000`,
	Run: runWatch,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.fireterm/config.yaml, then ./fireterm.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme name (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Frame interval in milliseconds (0 = use config)")

	// Add subcommands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuneCmd)
}
