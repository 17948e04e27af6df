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
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/registry"
	"github.com/vovakirdan/rabbit-run/internal/storage"
)

// configurable is implemented by games that accept tuning at runtime.
type configurable interface {
	ApplyConfig(cfg config.RabbitConfig)
}

// GameOptions are the collaborators a game model works with.
// Every field is optional.
type GameOptions struct {
	Store   *storage.Store
	Audio   core.Audio
	Logger  *log.Logger
	Reloads <-chan config.Reload // config file changes to apply at the next restart

	// Embedded models return to the menu on Back instead of ignoring it.
	Embedded bool
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       GameOptions
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	recorder   *storage.Recorder
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = core.NopAudio{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	logger = logger.With("game", game.ID())

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		recorder:   storage.NewRecorder(opts.Store, game.ID(), logger),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
}

// playfieldHeight leaves the bottom row for the help bar.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed)
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.opts.Reloads))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Game.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recorder.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	if state := m.recorder.State(); m.inputFrame.Has(core.ActionBack) && m.opts.Embedded &&
		(state.Ended() || state.Paused) {
		m.recorder.Quit()
		m.backToMenu = true
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	m.recorder.Observe(result)
	core.PlayEvents(m.opts.Audio, result.Events)

	return m, tickCmd(m.config.TickRate)
}

// handleReload queues valid tuning for the next restart.
func (m GameModel) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.logger.Warn("ignoring config change", "path", r.Path, "error", r.Err)
	} else if g, ok := m.game.(configurable); ok {
		g.ApplyConfig(r.Config)
		m.logger.Info("config queued for next run", "path", r.Path)
	}
	return m, waitForReload(m.opts.Reloads)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".rabbit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Game))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.recorder.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
