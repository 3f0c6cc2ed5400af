package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/config"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows every registered theme, including user themes from the config file.`,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	// Load config so user-defined themes show up too
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.InstallThemes(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := theme.Names()
	if len(names) == 0 {
		fmt.Println("No themes available.")
		return
	}

	active := flagTheme
	if active == "" {
		active = cfg.ThemeName()
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Glyphs", "Colors")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "------")

	// Print themes
	for _, name := range names {
		th, lookupErr := theme.Lookup(name)
		if lookupErr != nil {
			continue
		}
		marker := ""
		if name == active {
			marker = "  (active)"
		}
		fmt.Printf("  %-*s  %-6d  %d%s\n", maxNameLen, name, len(th.Glyphs), len(th.Colors), marker)
	}

	fmt.Println()
	fmt.Println("Run 'fireterm --theme <name>' to watch with a theme.")
}
