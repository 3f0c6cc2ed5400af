package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

// Chrome styles for the frame around the fire.
var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("94"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// StylesFor builds the lipgloss palette for a theme's color ramp. The
// style at index i renders color bin i.
func StylesFor(th *theme.Theme) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(th.Colors))
	for i, spec := range th.Colors {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(spec))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles []lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.CellAt(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.CellAt(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Cells pointing past the palette render unstyled
			if int(startColor) < len(styles) {
				sb.WriteString(styles[startColor].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
