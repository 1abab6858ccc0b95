// Package tui provides the Bubble Tea front end for the catcher game.
// It runs the terminal UI loop locally or per SSH session and maps keys and
// the mouse to game input.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/catch"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// TickMsg advances the game by one frame.
type TickMsg time.Time

// tickCmd schedules the next frame. Each tick is requested after the
// previous one was handled, so a slow terminal drops frames instead of
// queueing them.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model that drives one catcher game.
// The rows under the play area hold the help footer.
type Model struct {
	game     *catch.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	termH    int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game and resets the game
// to its start screen.
func NewModel(game *catch.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		input:  core.NewInputFrame(),
		termH:  cfg.ScreenH,
	}
	cfg.ScreenH = m.playHeight()
	m.config = cfg
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Reset(cfg)
	return m
}

// playHeight is the number of rows left for the game above the help footer.
func (m Model) playHeight() int {
	return max(m.termH-lipgloss.Height(m.help.View(m.keys)), 1)
}

// relayout resizes the play area to the terminal minus the footer.
func (m *Model) relayout() {
	playH := m.playHeight()
	m.config.ScreenH = playH
	m.screen.Resize(m.config.ScreenW, playH)
	m.game.Resize(m.config.ScreenW, playH)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.input.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are queued for the next
// tick; quitting, help and screenshots are handled right away.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

// handleResize keeps the round going and re-derives its geometry.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termH = msg.Height
	m.config.ScreenW = msg.Width
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.input)
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".dropcatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("dropcatch_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a game on the local terminal.
func Run(game *catch.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover moves the bucket
	)

	_, err := p.Run()
	return err
}
