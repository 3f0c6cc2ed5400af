package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/core"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/fire"
	"github.com/ruiiiijiiiiang/fire-in-the-term/internal/theme"
)

// Layout constants
const (
	borderWidth  = 2 // Rounded border, one column each side
	borderHeight = 2 // One row top and bottom
	footerHeight = 1 // Theme name + key help
	minFireW     = 1
	minFireH     = 1
)

// Model is the Bubble Tea model driving the fireplace.
type Model struct {
	grid     *fire.Grid
	engine   *fire.Engine
	renderer *fire.Renderer
	screen   *core.Screen
	theme    *theme.Theme
	styles   []lipgloss.Style
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig

	width      int
	height     int
	fireW      int
	fireH      int
	showFooter bool
	tooSmall   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the fireplace.
func NewModel(cfg core.RuntimeConfig, th *theme.Theme, params fire.Params) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}

	// One RNG drives both simulation and glyph shimmer, so a seed pins
	// the entire visual stream.
	rng := rand.New(rand.NewSource(cfg.Seed))

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine:   fire.NewEngine(params, rng),
		renderer: fire.NewRenderer(th, rng),
		theme:    th,
		styles:   StylesFor(th),
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.layout()
	m.grid = fire.NewGrid(m.fireW, m.fireH)
	m.screen = core.NewScreen(m.fireW, m.fireH)
	return m
}

// layout recomputes the drawable fire area from the terminal size.
func (m *Model) layout() {
	fw := m.width - borderWidth
	fh := m.height - borderHeight - footerHeight
	m.showFooter = true
	if fh < minFireH {
		// Drop the footer before shrinking the flame out of existence
		m.showFooter = false
		fh = m.height - borderHeight
	}
	m.tooSmall = fw < minFireW || fh < minFireH
	if m.tooSmall {
		return
	}
	m.fireW = fw
	m.fireH = fh
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Only quit keys do anything.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The flame area follows the
// terminal; a resize discards accumulated heat and the fire rebuilds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()

	if !m.tooSmall {
		m.screen.Resize(m.fireW, m.fireH)
		m.grid.Reset(m.fireW, m.fireH)
	}

	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.tooSmall {
		m.grid.Reset(m.fireW, m.fireH)
		m.grid = m.engine.Step(m.grid)
	}

	// Keep ticking even while too small, so the fire resumes on resize
	return m, tickCmd(m.config.Tick)
}

// View renders the current frame: the fire inside a rounded border with a
// one-line footer beneath it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			noticeStyle.Render("terminal too small"))
	}

	m.renderer.Render(m.grid, m.screen)
	frame := borderStyle.Render(RenderScreen(m.screen, m.styles))
	if !m.showFooter {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.footerView())
}

// footerView renders the theme name and key help on one line.
func (m Model) footerView() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		footerStyle.Render(" "+m.theme.Name+" "),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg core.RuntimeConfig, th *theme.Theme, params fire.Params) error {
	model := NewModel(cfg, th, params)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
