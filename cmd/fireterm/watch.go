package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/config"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/fire"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/platform/tui"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

// loadSetup loads configuration, installs user-defined themes, and resolves
// the active theme, engine tuning, and frame interval from flags and config.
// Exits the process on invalid input since no command can proceed without it.
func loadSetup() (*theme.Theme, fire.Params, time.Duration) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.InstallThemes(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := flagTheme
	if name == "" {
		name = cfg.ThemeName()
	}
	th, err := theme.Lookup(name)
	if err != nil {
		if flagTheme != "" {
			fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", name)
			fmt.Fprintln(os.Stderr, "Run 'fireterm themes' to see available themes.")
			os.Exit(1)
		}
		// A bad theme name in the config file should not kill the fire
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q in config, using %q\n", name, theme.DefaultName)
		th, err = theme.Lookup(theme.DefaultName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	params := cfg.Params()
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid simulation config: %v\n", err)
		os.Exit(1)
	}

	tick := cfg.TickInterval()
	if flagTick > 0 {
		tick = time.Duration(flagTick) * time.Millisecond
	}

	return th, params, tick
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the fire in the current terminal",
	Long: `Start the fireplace in the current terminal.

This is what plain 'fireterm' does; the subcommand exists for scripts
that prefer an explicit verb.

Controls:
  Q/Esc/Ctrl+C - Quit

Examples:
  fireterm watch
  fireterm watch --theme bluegas --seed 42`,
	Run: runWatch,
}

func runWatch(_ *cobra.Command, _ []string) {
	th, params, tick := loadSetup()

	// Size to the terminal, keeping the stock 80x24 when stdout is not one
	cfg := core.DefaultConfig()
	cfg.Tick = tick
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(cfg, th, params); err != nil {
		fmt.Fprintf(os.Stderr, "Error running fireplace: %v\n", err)
		os.Exit(1)
	}
}
