package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frogger-arcade/internal/core"
	"github.com/vovakirdan/frogger-arcade/internal/logging"
)

// Game is what the platform drives. Keys are applied as they arrive;
// Step advances the simulation by the real time since the previous tick.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	HandleAction(a core.Action)
	Step(dt time.Duration) core.StepResult
	Render(screen *core.Screen)
	State() core.GameState
}

// Options are optional collaborators of the model.
type Options struct {
	Runs   RunSource // Enables the runs overlay when set
	Logger *log.Logger
}

// footerHeight is the line reserved for the help footer.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	runs     *runsView
	showRuns bool
	lastTick time.Time
	state    core.GameState
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
	if opts.Runs != nil {
		m.runs = newRunsView(opts.Runs, cfg.ScreenW, cfg.ScreenH)
	} else {
		m.keys.Runs.SetEnabled(false)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// Banners take every other key, q included.
	if !m.showRuns && m.game.State().AnyKey {
		m.game.HandleAction(m.keys.MapKey(msg))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Runs):
		m.showRuns = !m.showRuns
		if m.showRuns {
			m.runs.Refresh()
		}
		return m, nil
	}

	if m.showRuns {
		if msg.Type == tea.KeyEsc {
			m.showRuns = false
			return m, nil
		}
		return m, m.runs.Update(msg)
	}

	m.game.HandleAction(m.keys.MapKey(msg))
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("quit", "score", m.state.Score, "level", m.state.Level)
	return m, tea.Quit
}

// handleResize processes window resize events. The game lays itself out on
// every render, so its state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	if m.runs != nil {
		m.runs.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick advances the game by the time since the previous tick. The
// runs overlay pauses the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	if !m.showRuns {
		m.state = m.game.Step(dt).State
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text under the XDG state
// directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	name := filepath.Join("frogger", "screenshots", fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	path, err := xdg.StateFile(name)
	if err != nil {
		m.logger.Warn("could not resolve screenshot path", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRuns {
		return m.runs.View() + "\n" + footerStyle.Render("tab/esc close   ↑/↓ scroll")
	}

	m.game.Render(m.screen)
	return renderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
