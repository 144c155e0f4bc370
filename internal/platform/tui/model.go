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

	"github.com/vovakirdan/tile-arena/internal/config"
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/registry"
	"github.com/vovakirdan/tile-arena/internal/storage"
)

// Env bundles what every session needs to create and record games.
type Env struct {
	Config config.ArenaConfig
	Store  *storage.Store // nil disables persistence
	Logger *log.Logger
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// CreateGame instantiates a registered mode whose high score is backed by
// the env's store.
func (e Env) CreateGame(id string) (registry.Game, error) {
	deps := registry.Deps{Config: e.Config, Logger: e.logger()}
	if e.Store != nil {
		deps.HighScores = storage.NewHighScoreKeeper(e.Store, id, e.logger())
	}
	return registry.Create(id, deps)
}

// seeded is implemented by games that expose the seed of the current run.
type seeded interface {
	Seed() int64
}

// runStats accumulates the current run for the history table.
type runStats struct {
	seed     int64
	kills    int
	duration float64
	saved    bool
}

// Model is the Bubble Tea model for running an arena game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	run        runStats
	embedded   bool // driven by a session; b returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and starts
// its first run.
func NewModel(game registry.Game, env Env, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		env:        env,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.run = runStats{seed: m.currentSeed()}
	return m
}

func (m Model) currentSeed() int64 {
	if s, ok := m.game.(seeded); ok {
		return s.Seed()
	}
	return m.config.Seed
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.embedded && key.Matches(msg, m.keys.Keys.Menu) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the run continues and only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || duplicateTick(m.lastTick, now, m.config.TickRate) {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	prev := m.gameState
	prevSeed := m.currentSeed()
	playing := !prev.GameOver && !prev.Paused

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	restarted := m.currentSeed() != prevSeed || (prev.GameOver && !result.State.GameOver)
	switch {
	case restarted:
		// A run abandoned from the pause screen still counts.
		if !m.run.saved {
			m.saveRun(prev.Score)
		}
		m.run = runStats{seed: m.currentSeed()}
	case playing:
		m.run.duration += dt
	}
	m.run.kills += result.Kills

	if m.gameState.GameOver && !m.run.saved {
		m.saveRun(m.gameState.Score)
		m.run.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run with the given final score. Zero-score
// runs are not kept.
func (m Model) saveRun(score int) {
	if m.env.Store == nil || score <= 0 {
		return
	}
	id, err := m.env.Store.SaveRun(storage.RunRecord{
		Mode:     m.game.ID(),
		Score:    score,
		Kills:    m.run.kills,
		Seed:     m.run.seed,
		Duration: m.run.duration,
	})
	if err != nil {
		m.env.logger().Warn("save run", "mode", m.game.ID(), "err", err)
		return
	}
	m.env.logger().Info("run saved", "id", id, "mode", m.game.ID(), "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.logger().Warn("screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return withHelpLine(RenderScreen(m.screen), m.help.View(m.keys.Keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewModel(game, env, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
