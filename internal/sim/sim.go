// Package sim is the arena simulation: adversary AI, projectiles, spawning,
// difficulty cadence, scoring and the run state machine. A Sim is driven by
// Tick and the input handlers from a single goroutine.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arena/internal/config"
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/world"
)

var (
	// ErrNoPlayer is returned when the store has no player entity.
	ErrNoPlayer = errors.New("sim: no player entity")
	// ErrTileUnavailable is returned when a spawn targets a blocked or
	// off-board tile.
	ErrTileUnavailable = errors.New("sim: tile unavailable")
)

// Sim is the simulation context. It owns every timer and counter of a run;
// entities live in the world.Store it was built with.
type Sim struct {
	cfg    config.ArenaConfig
	grid   grid.Grid
	store  *world.Store
	player world.Handle
	rng    *rand.Rand
	logger *log.Logger

	difficulty *Difficulty
	scores     *ScoreKeeper
	state      State

	elapsed    float64 // seconds of unpaused play
	lastShotAt float64
	facing     core.Vec3
}

type options struct {
	seed       int64
	rng        *rand.Rand
	highScores HighScoreStore
	logger     *log.Logger
	observer   world.Observer
}

// Option configures a Sim.
type Option func(*options)

// WithSeed seeds the spawn RNG.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the spawn RNG directly.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithHighScores sets the persistent high score store.
func WithHighScores(hs HighScoreStore) Option {
	return func(o *options) { o.highScores = hs }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver installs a store observer. Only NewArena uses it, since New
// receives a store that already has one.
func WithObserver(obs world.Observer) Option {
	return func(o *options) { o.observer = obs }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(o.seed))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// New wraps an existing store. The store must already hold the player.
// The player is moved to the board center and any adversaries already
// present are moved out of its safety radius.
func New(cfg config.ArenaConfig, store *world.Store, opts ...Option) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if store == nil {
		return nil, ErrNoPlayer
	}
	player, ok := store.Player()
	if !ok {
		return nil, ErrNoPlayer
	}
	o := buildOptions(opts)

	s := &Sim{
		cfg:        cfg,
		grid:       store.Grid(),
		store:      store,
		player:     player,
		rng:        o.rng,
		logger:     o.logger,
		difficulty: NewDifficulty(cfg.Difficulty),
		scores:     NewScoreKeeper(o.highScores, o.logger),
		state:      Playing,
		lastShotAt: math.Inf(-1),
		facing:     core.V3(0, 0, 1),
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewArena builds the board, the store and the player from cfg, then seeds
// cfg.Adversaries.Initial adversaries.
func NewArena(cfg config.ArenaConfig, opts ...Option) (*Sim, error) {
	g, err := grid.New(cfg.Grid.Size, cfg.Grid.TileSize)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	o := buildOptions(opts)
	store := world.NewStore(g, o.observer)

	ph := cfg.Player.HalfExtent
	if _, err := store.Spawn(world.Entity{
		Role:   world.RolePlayer,
		Center: g.TileToWorld(grid.Tile{}, ph),
		Half:   core.V3(ph, ph, ph),
	}); err != nil {
		return nil, fmt.Errorf("sim: spawn player: %w", err)
	}

	s, err := New(cfg, store,
		WithRand(o.rng),
		WithHighScores(o.highScores),
		WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cfg.Adversaries.Initial; i++ {
		s.SpawnRandom()
	}
	return s, nil
}

func (s *Sim) start() error {
	c := s.store.Center(s.player)
	if err := s.store.SetCenter(s.player, s.grid.TileToWorld(grid.Tile{}, c.Y)); err != nil {
		return fmt.Errorf("sim: place player: %w", err)
	}
	s.relocateAdversaries()
	s.logger.Debug("run started", "grid", s.grid.Size, "adversaries", s.store.AdversaryCount())
	return nil
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Moves       int // adversary move ticks fired
	Spawned     int // adversaries created
	Detonations []Detonation
	GameOver    bool // the run ended during this tick
}

// Kills sums adversaries destroyed by this tick's detonations.
func (r TickResult) Kills() int {
	n := 0
	for _, d := range r.Detonations {
		n += d.Killed
	}
	return n
}

// Tick advances the simulation by dt seconds. Nothing happens while paused
// or after the run ended.
func (s *Sim) Tick(dt float64) TickResult {
	var res TickResult
	if s.state != Playing {
		return res
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	s.elapsed += dt
	s.store.SyncAll()

	moves, spawns := s.difficulty.Advance(dt, s.scores.Score())
	for i := 0; i < moves; i++ {
		s.moveAdversaries()
	}
	res.Moves = moves
	for i := 0; i < spawns; i++ {
		if s.SpawnRandom() {
			res.Spawned++
		}
	}

	if s.elapsed > s.cfg.Timing.SpawnSafetyTime && s.playerInContact() {
		s.endRun()
		res.GameOver = true
		return res
	}

	res.Detonations = s.advanceProjectiles(dt)
	return res
}

func (s *Sim) playerInContact() bool {
	pt := s.store.Tile(s.player)
	for _, h := range s.store.Adversaries() {
		if grid.Chebyshev(s.store.Tile(h), pt) <= 1 {
			return true
		}
	}
	return false
}

// ToggleMaxDifficulty flips the max-difficulty lock and restarts both
// cadence timers. Ignored unless playing.
func (s *Sim) ToggleMaxDifficulty() bool {
	if s.state != Playing {
		return false
	}
	s.difficulty.SetMaxLocked(!s.difficulty.Locked())
	s.logger.Debug("max difficulty toggled", "locked", s.difficulty.Locked())
	return true
}

// Teardown destroys every entity. Call it before discarding a finished run.
func (s *Sim) Teardown() {
	s.store.Clear()
}

// Store returns the entity store.
func (s *Sim) Store() *world.Store { return s.store }

// Grid returns the board.
func (s *Sim) Grid() grid.Grid { return s.grid }

// Config returns the configuration the run was built with.
func (s *Sim) Config() config.ArenaConfig { return s.cfg }

// State returns the run phase.
func (s *Sim) State() State { return s.state }

// Player returns the player handle.
func (s *Sim) Player() world.Handle { return s.player }

// PlayerTile returns the tile under the player.
func (s *Sim) PlayerTile() grid.Tile { return s.store.Tile(s.player) }

// Facing returns the player's last movement direction.
func (s *Sim) Facing() core.Vec3 { return s.facing }

// Elapsed returns seconds of unpaused play.
func (s *Sim) Elapsed() float64 { return s.elapsed }

// Score returns the current score.
func (s *Sim) Score() int { return s.scores.Score() }

// HighScore returns the best known score.
func (s *Sim) HighScore() int { return s.scores.HighScore() }

// NewHigh reports whether the finished run set a record.
func (s *Sim) NewHigh() bool { return s.scores.NewHigh() }

// AddScore adds points through the score keeper.
func (s *Sim) AddScore(points int) { s.scores.Add(points) }

// MaxLocked reports whether the max-difficulty lock is on.
func (s *Sim) MaxLocked() bool { return s.difficulty.Locked() }

// SpeedupSteps returns the steps earned at the current score.
func (s *Sim) SpeedupSteps() int { return s.difficulty.Steps(s.scores.Score()) }

// MoveInterval returns the current seconds between adversary moves.
func (s *Sim) MoveInterval() float64 { return s.difficulty.MoveInterval(s.scores.Score()) }

// SpawnInterval returns the current seconds between spawn attempts.
func (s *Sim) SpawnInterval() float64 { return s.difficulty.SpawnInterval(s.scores.Score()) }

// Timers returns the move and spawn accumulators.
func (s *Sim) Timers() (move, spawn float64) { return s.difficulty.Timers() }
