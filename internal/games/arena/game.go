// Package arena is the playable tile arena: it feeds platform input into the
// simulation, draws the board into a core.Screen and exposes snapshots for
// determinism tests and tracing.
package arena

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arena/internal/config"
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/registry"
	"github.com/vovakirdan/tile-arena/internal/sim"
	"github.com/vovakirdan/tile-arena/internal/world"
)

// flashSeconds is how long a detonation stays drawn.
const flashSeconds = 0.35

type flash struct {
	tile grid.Tile
	ttl  float64
}

// Game implements registry.Game for one difficulty preset.
type Game struct {
	cfg        config.ArenaConfig
	preset     config.DifficultyPreset
	highScores sim.HighScoreStore
	logger     *log.Logger

	sim     *sim.Sim
	err     error
	rng     *rand.Rand
	seed    int64
	frame   uint64
	screenW int
	screenH int

	showDanger bool
	flashes    []flash

	// counters fed by the world observer
	spawned   int
	destroyed int
}

// Option configures a Game.
type Option func(*Game)

// WithHighScores sets the persistent high score store.
func WithHighScores(hs sim.HighScoreStore) Option {
	return func(g *Game) { g.highScores = hs }
}

// WithLogger sets the logger handed to the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithPreset applies a difficulty preset on top of cfg.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = p }
}

// New creates an arena game. Call Reset before stepping it.
func New(cfg config.ArenaConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		preset: config.DifficultyNormal,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.highScores == nil {
		g.highScores = &sim.MemoryHighScores{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	config.ApplyArenaPreset(&g.cfg, g.preset)
	return g
}

func init() {
	for _, p := range config.Presets() {
		preset := p
		registry.Register(ModeID(preset), func(deps registry.Deps) registry.Game {
			return New(deps.Config, WithPreset(preset), WithHighScores(deps.HighScores), WithLogger(deps.Logger))
		})
	}
}

// ModeID returns the registry ID of the arena at a preset.
func ModeID(p config.DifficultyPreset) string {
	if p == config.DifficultyNormal {
		return "arena"
	}
	return "arena_" + string(p)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ModeID(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Tile Arena (Easy)"
	case config.DifficultyHard:
		return "Tile Arena (Hard)"
	case config.DifficultyFixed:
		return "Tile Arena (Fixed Pace)"
	case config.DifficultyMax:
		return "Tile Arena (Max)"
	}
	return "Tile Arena"
}

// Reset starts a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.sim != nil {
		g.sim.Teardown()
	}
	g.seed = rc.Seed
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.frame = 0
	g.flashes = g.flashes[:0]
	g.spawned = 0
	g.destroyed = 0

	g.sim, g.err = sim.NewArena(g.cfg,
		sim.WithRand(g.rng),
		sim.WithHighScores(g.highScores),
		sim.WithLogger(g.logger),
		sim.WithObserver(g),
	)
	if g.err != nil {
		g.logger.Error("arena setup failed", "err", g.err)
	}
}

// Step applies one frame of input and advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	if in.Has(core.ActionRestart) && g.sim.State() != sim.Playing {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}
	if in.Has(core.ActionDebug) {
		g.showDanger = !g.showDanger
	}
	if in.Has(core.ActionMaxDifficulty) {
		g.sim.ToggleMaxDifficulty()
	}
	for _, a := range in.Moves() {
		g.sim.Move(directionFor(a))
	}
	if in.Has(core.ActionFire) {
		g.sim.Fire()
	}

	res := g.sim.Tick(dt)
	if g.sim.State() == sim.Playing || res.GameOver {
		g.ageFlashes(dt)
	}
	for _, d := range res.Detonations {
		g.flashes = append(g.flashes, flash{tile: d.Tile, ttl: flashSeconds})
	}

	return core.StepResult{State: g.State(), Kills: res.Kills()}
}

func (g *Game) ageFlashes(dt float64) {
	kept := g.flashes[:0]
	for _, f := range g.flashes {
		f.ttl -= dt
		if f.ttl > 0 {
			kept = append(kept, f)
		}
	}
	g.flashes = kept
}

func directionFor(a core.Action) sim.Direction {
	switch a {
	case core.ActionMoveLeft:
		return sim.Left
	case core.ActionMoveRight:
		return sim.Right
	case core.ActionMoveForward:
		return sim.Forward
	default:
		return sim.Back
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:     g.sim.Score(),
		HighScore: g.sim.HighScore(),
		GameOver:  g.sim.State() == sim.GameOver,
		Paused:    g.sim.State() == sim.Paused,
		NewHigh:   g.sim.NewHigh(),
	}
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// DangerOverlay reports whether danger tiles are drawn.
func (g *Game) DangerOverlay() bool {
	return g.showDanger
}

// EntitySpawned implements world.Observer.
func (g *Game) EntitySpawned(_ world.Handle, e world.Entity) {
	if e.Role == world.RoleAdversary {
		g.spawned++
	}
}

// EntityMoved implements world.Observer.
func (g *Game) EntityMoved(world.Handle, world.Entity) {}

// EntityDestroyed implements world.Observer.
func (g *Game) EntityDestroyed(_ world.Handle, e world.Entity) {
	if e.Role == world.RoleAdversary {
		g.destroyed++
	}
}
