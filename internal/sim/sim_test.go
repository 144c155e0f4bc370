package sim

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tile-arena/internal/config"
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/world"
)

func newTestSim(t *testing.T, opts ...Option) *Sim {
	t.Helper()
	s, err := NewArena(config.DefaultArenaConfig(), opts...)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	return s
}

func spawnAdversary(t *testing.T, s *Sim, tile grid.Tile) world.Handle {
	t.Helper()
	h, err := s.SpawnAdversary(tile)
	if err != nil {
		t.Fatalf("SpawnAdversary(%v): %v", tile, err)
	}
	return h
}

// spawnProjectile places a projectile centered on tile, flying along dir.
func spawnProjectile(t *testing.T, s *Sim, tile grid.Tile, dir core.Vec3) world.Handle {
	t.Helper()
	r := s.cfg.Projectile.Radius
	h, err := s.store.Spawn(world.Entity{
		Role:   world.RoleProjectile,
		Center: s.grid.TileToWorld(tile, 0.9),
		Half:   core.V3(r, r, r),
		Motion: world.Motion{Dir: dir, MaxRange: s.cfg.Projectile.Range},
	})
	if err != nil {
		t.Fatalf("spawn projectile: %v", err)
	}
	return h
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewRequiresPlayer(t *testing.T) {
	g, _ := grid.New(11, 1)
	_, err := New(config.DefaultArenaConfig(), world.NewStore(g, nil))
	if !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("New without player: err = %v, expected ErrNoPlayer", err)
	}
	if _, err := New(config.DefaultArenaConfig(), nil); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("New with nil store: err = %v, expected ErrNoPlayer", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Grid.Size = 4
	if _, err := NewArena(cfg); err == nil {
		t.Fatal("NewArena should reject an even grid")
	}
}

func TestNewPlacesPlayerAndRelocatesAdversaries(t *testing.T) {
	g, _ := grid.New(11, 1)
	store := world.NewStore(g, nil)
	half := core.V3(0.45, 0.45, 0.45)
	store.Spawn(world.Entity{Role: world.RolePlayer, Center: g.TileToWorld(grid.Tile{X: 2, Z: 2}, 0.45), Half: half})
	near1, _ := store.Spawn(world.Entity{Role: world.RoleAdversary, Center: g.TileToWorld(grid.Tile{X: 1}, 0.45), Half: half})
	far, _ := store.Spawn(world.Entity{Role: world.RoleAdversary, Center: g.TileToWorld(grid.Tile{X: -4, Z: 4}, 0.45), Half: half})

	s, err := New(config.DefaultArenaConfig(), store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.PlayerTile() != (grid.Tile{}) {
		t.Errorf("player tile = %v, expected center", s.PlayerTile())
	}
	if got := store.Tile(near1); got != (grid.Tile{X: 3}) {
		t.Errorf("close adversary relocated to %v, expected (3,0)", got)
	}
	if got := store.Tile(far); got != (grid.Tile{X: -4, Z: 4}) {
		t.Errorf("distant adversary moved to %v", got)
	}
}

func TestRelocationKeepsFirstOnSharedTile(t *testing.T) {
	g, _ := grid.New(11, 1)
	store := world.NewStore(g, nil)
	half := core.V3(0.45, 0.45, 0.45)
	store.Spawn(world.Entity{Role: world.RolePlayer, Center: g.TileToWorld(grid.Tile{}, 0.45), Half: half})
	shared := g.TileToWorld(grid.Tile{X: -4, Z: 4}, 0.45)
	first, _ := store.Spawn(world.Entity{Role: world.RoleAdversary, Center: shared, Half: half})
	second, _ := store.Spawn(world.Entity{Role: world.RoleAdversary, Center: shared, Half: half})

	if _, err := New(config.DefaultArenaConfig(), store); err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := store.Tile(first); got != (grid.Tile{X: -4, Z: 4}) {
		t.Errorf("first adversary moved to %v, expected it to keep its tile", got)
	}
	// Nearest free tile, first in row-major order.
	if got := store.Tile(second); got != (grid.Tile{X: -4, Z: 3}) {
		t.Errorf("second adversary relocated to %v, expected (-4,3)", got)
	}
}

func TestInitialAdversariesRespectSafety(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Adversaries.Initial = 5
	s, err := NewArena(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if s.store.AdversaryCount() != 5 {
		t.Fatalf("adversaries = %d, expected 5", s.store.AdversaryCount())
	}
	for _, h := range s.store.Adversaries() {
		if d := grid.Chebyshev(s.store.Tile(h), s.PlayerTile()); d < cfg.Adversaries.MinSpawnDistance {
			t.Errorf("adversary spawned at distance %d", d)
		}
	}
}

// Fire forward at an adversary two tiles ahead: it dies and scores 100.
func TestScenarioProjectileKill(t *testing.T) {
	s := newTestSim(t)
	target := spawnAdversary(t, s, grid.Tile{Z: 2})

	if _, ok := s.Fire(); !ok {
		t.Fatal("first shot should not be on cooldown")
	}

	var dets []Detonation
	for i := 0; i < 60 && s.store.ProjectileCount() > 0; i++ {
		res := s.Tick(1.0 / 60)
		dets = append(dets, res.Detonations...)
	}

	if s.store.Alive(target) {
		t.Fatal("adversary should be destroyed")
	}
	if s.Score() != 100 {
		t.Errorf("score = %d, expected 100", s.Score())
	}
	if len(dets) != 1 || !dets[0].Hit || dets[0].Killed != 1 {
		t.Errorf("detonations = %+v, expected one hit killing one", dets)
	}
	if s.State() != Playing {
		t.Errorf("state = %v, expected playing", s.State())
	}
}

func TestScenarioMoveIntervalAtScore(t *testing.T) {
	s := newTestSim(t)
	s.AddScore(2500)

	if s.SpeedupSteps() != 2 {
		t.Errorf("SpeedupSteps() = %d, expected 2", s.SpeedupSteps())
	}
	if !near(s.MoveInterval(), 1.3) {
		t.Errorf("MoveInterval() = %v, expected 1.3", s.MoveInterval())
	}
	if !near(s.SpawnInterval(), 4.8) {
		t.Errorf("SpawnInterval() = %v, expected 4.8", s.SpawnInterval())
	}
}

// Adversary at (3,3) avoids the greedy step (2,2) when it is in a blast path.
func TestScenarioDangerAvoidance(t *testing.T) {
	s := newTestSim(t)
	a := spawnAdversary(t, s, grid.Tile{X: 3, Z: 3})
	spawnProjectile(t, s, grid.Tile{X: 2, Z: 4}, core.V3(0, 0, -1))

	for _, tile := range []grid.Tile{{X: 2, Z: 4}, {X: 2, Z: 3}, {X: 2, Z: 2}} {
		if !s.IsDangerTile(tile) {
			t.Errorf("%v should be a danger tile", tile)
		}
	}
	if s.IsDangerTile(grid.Tile{X: 2, Z: 1}) {
		t.Error("(2,1) is beyond the lookahead")
	}
	if s.IsDangerTile(grid.Tile{X: 2, Z: 5}) {
		t.Error("tiles behind the projectile are safe")
	}

	if got := s.ChooseStep(a); got != (grid.Tile{X: 3, Z: 2}) {
		t.Errorf("ChooseStep() = %v, expected (3,2)", got)
	}
}

func TestScenarioSpawnSkippedWhenFull(t *testing.T) {
	s := newTestSim(t)
	for _, tile := range s.SpawnCandidates() {
		spawnAdversary(t, s, tile)
	}
	before := s.store.AdversaryCount()
	if before != 96 {
		t.Fatalf("filled %d tiles, expected 96", before)
	}

	if s.SpawnRandom() {
		t.Error("SpawnRandom should report false with no candidates")
	}
	if s.store.AdversaryCount() != before {
		t.Errorf("adversary count changed to %d", s.store.AdversaryCount())
	}
}

func TestScenarioPauseFreezesEverything(t *testing.T) {
	s := newTestSim(t, WithHighScores(&MemoryHighScores{Value: 700}))
	s.Tick(0.5)
	p, ok := s.Fire()
	if !ok {
		t.Fatal("Fire failed")
	}
	s.Tick(0.1)

	center := s.store.Center(p)
	move, spawn := s.Timers()
	elapsed := s.Elapsed()

	s.TogglePause()
	if s.State() != Paused {
		t.Fatalf("state = %v, expected paused", s.State())
	}
	for i := 0; i < 10; i++ {
		s.Tick(1)
	}
	if _, ok := s.Fire(); ok {
		t.Error("Fire should be rejected while paused")
	}
	if s.Move(Left) {
		t.Error("Move should be rejected while paused")
	}
	if s.ToggleMaxDifficulty() {
		t.Error("max toggle should be rejected while paused")
	}

	m2, sp2 := s.Timers()
	if s.store.Center(p) != center || m2 != move || sp2 != spawn || s.Elapsed() != elapsed {
		t.Error("pause must freeze projectiles and timers")
	}
	if s.Score() != 0 || s.HighScore() != 700 {
		t.Errorf("score/high changed: %d/%d", s.Score(), s.HighScore())
	}

	s.TogglePause()
	s.Tick(0.1)
	if s.store.Alive(p) && s.store.Center(p) == center {
		t.Error("projectile should move again after unpausing")
	}
}

func TestGameOverAfterSafetyWindow(t *testing.T) {
	hs := &MemoryHighScores{}
	s := newTestSim(t, WithHighScores(hs))
	spawnAdversary(t, s, grid.Tile{X: 1, Z: 1})

	if res := s.Tick(0.1); res.GameOver {
		t.Fatal("contact inside the safety window must not end the run")
	}
	res := s.Tick(0.15)
	if !res.GameOver || s.State() != GameOver {
		t.Fatalf("expected game over, state = %v", s.State())
	}
	if s.NewHigh() {
		t.Error("a zero score is never a new high")
	}

	s.TogglePause()
	if s.State() != GameOver {
		t.Error("pause must be a no-op after game over")
	}
	if _, ok := s.Fire(); ok {
		t.Error("Fire must be rejected after game over")
	}
	if res := s.Tick(1); res.Moves != 0 || res.Spawned != 0 {
		t.Error("ticks after game over must do nothing")
	}
	if s.store.AdversaryCount() != 1 {
		t.Error("the board stays frozen until teardown")
	}

	s.Teardown()
	if s.store.AdversaryCount() != 0 {
		t.Error("Teardown should destroy adversaries")
	}
}

func TestGameOverRecordsNewHigh(t *testing.T) {
	hs := &MemoryHighScores{Value: 150}
	s := newTestSim(t, WithHighScores(hs))
	s.AddScore(200)
	if hs.Value != 200 {
		t.Fatalf("high score should persist on increase, got %d", hs.Value)
	}
	spawnAdversary(t, s, grid.Tile{X: -1})
	s.Tick(0.5)

	if !s.NewHigh() || s.HighScore() != 200 {
		t.Errorf("NewHigh() = %v, HighScore() = %d", s.NewHigh(), s.HighScore())
	}
}

func TestBlastFootprint(t *testing.T) {
	s := newTestSim(t)
	inside := []grid.Tile{{X: 2, Z: 2}, {X: 3, Z: 4}, {X: 4, Z: 4}, {X: 3, Z: 3}}
	outside := []grid.Tile{{X: 5, Z: 5}, {X: 3, Z: 1}, {X: 1, Z: 3}}

	var in, out []world.Handle
	for _, tile := range inside {
		in = append(in, spawnAdversary(t, s, tile))
	}
	for _, tile := range outside {
		out = append(out, spawnAdversary(t, s, tile))
	}

	killed := s.ExplodeAt(s.grid.TileToWorld(grid.Tile{X: 3, Z: 3}, 0.9))
	if killed != len(inside) {
		t.Errorf("killed %d, expected %d", killed, len(inside))
	}
	if s.Score() != 100*len(inside) {
		t.Errorf("score = %d, expected %d", s.Score(), 100*len(inside))
	}
	for _, h := range in {
		if s.store.Alive(h) {
			t.Errorf("adversary at %v should be destroyed", s.store.Tile(h))
		}
	}
	for _, h := range out {
		if !s.store.Alive(h) {
			t.Errorf("adversary %v is outside the blast and should survive", s.store.Tile(h))
		}
	}

	if s.ExplodeAt(core.V3(-4, 0, -4)) != 0 || s.Score() != 400 {
		t.Error("an empty blast must not change the score")
	}
}

func TestFireCooldownAndMuzzle(t *testing.T) {
	s := newTestSim(t)

	if s.CooldownProgress() != 1 {
		t.Errorf("CooldownProgress() = %v before the first shot", s.CooldownProgress())
	}
	p, ok := s.Fire()
	if !ok {
		t.Fatal("Fire failed")
	}
	c := s.store.Center(p)
	if !near(c.X, 0) || !near(c.Y, 0.9) || !near(c.Z, 0.5) {
		t.Errorf("muzzle = %v, expected (0, 0.9, 0.5)", c)
	}
	if _, ok := s.Fire(); ok {
		t.Error("second shot should be on cooldown")
	}
	if s.CooldownProgress() != 0 {
		t.Errorf("CooldownProgress() = %v right after a shot", s.CooldownProgress())
	}

	s.Tick(1.0)
	if _, ok := s.Fire(); ok {
		t.Error("still on cooldown after 1s")
	}
	s.Tick(0.5)

	if !s.Move(Left) {
		t.Fatal("Move(Left) failed")
	}
	p2, ok := s.Fire()
	if !ok {
		t.Fatal("cooldown should re-arm after 1.5s")
	}
	c2 := s.store.Center(p2)
	if !near(c2.X, 1.5) || !near(c2.Z, 0) {
		t.Errorf("muzzle after facing +X = %v, expected x=1.5 z=0", c2)
	}
}

func TestProjectileExpiresAtRange(t *testing.T) {
	s := newTestSim(t)
	p, _ := s.Fire()

	// 4 tiles at 6 tiles/s takes 2/3 s.
	var dets []Detonation
	elapsed := 0.0
	for s.store.Alive(p) {
		res := s.Tick(1.0 / 30)
		elapsed += 1.0 / 30
		dets = append(dets, res.Detonations...)
		if elapsed > 1 {
			t.Fatal("projectile outlived its range")
		}
	}
	if elapsed > 4.0/6+2.0/30 {
		t.Errorf("projectile lived %vs", elapsed)
	}
	if len(dets) != 1 || dets[0].Hit {
		t.Errorf("detonations = %+v, expected one range expiry", dets)
	}
}

func TestProjectileDetonatesLeavingBoard(t *testing.T) {
	s := newTestSim(t)
	for i := 0; i < 5; i++ {
		s.Move(Left)
	}
	if s.PlayerTile() != (grid.Tile{X: 5}) {
		t.Fatalf("player at %v, expected the +X edge", s.PlayerTile())
	}
	a := spawnAdversary(t, s, grid.Tile{X: 5, Z: 4})

	p, ok := s.Fire()
	if !ok {
		t.Fatal("fire rejected")
	}

	var dets []Detonation
	for tick := 0; s.store.Alive(p); tick++ {
		if tick > 30 {
			t.Fatal("projectile kept flying off the board")
		}
		dets = append(dets, s.Tick(1.0/30).Detonations...)
		if s.store.Alive(p) && !s.grid.InBounds(s.store.Tile(p)) {
			t.Fatalf("projectile alive off the board at %v", s.store.Tile(p))
		}
	}
	if len(dets) != 1 || dets[0].Hit {
		t.Fatalf("detonations = %+v, expected one edge expiry", dets)
	}
	if dets[0].Tile.X != 6 || dets[0].Tile.Z != 0 {
		t.Errorf("detonation tile = %v, expected just past the edge", dets[0].Tile)
	}
	if !s.store.Alive(a) {
		t.Error("blast should not reach an adversary four rows away")
	}
}

func TestMoveRules(t *testing.T) {
	s := newTestSim(t)
	spawnAdversary(t, s, grid.Tile{X: -3})

	for i := 0; i < 5; i++ {
		if !s.Move(Forward) {
			t.Fatalf("Move(Forward) #%d failed", i)
		}
	}
	if s.PlayerTile() != (grid.Tile{Z: 5}) {
		t.Fatalf("player at %v, expected (0,5)", s.PlayerTile())
	}
	if s.Move(Forward) {
		t.Error("moving off the board must be rejected")
	}

	s.Move(Back)
	if s.Facing() != core.V3(0, 0, -1) {
		t.Errorf("Facing() = %v after moving back", s.Facing())
	}

	if err := s.MoveTo(grid.Tile{X: -2}); err != nil {
		t.Fatal(err)
	}
	if s.Move(Right) {
		t.Error("moving into an adversary must be rejected")
	}
	if s.Facing() != core.V3(-1, 0, 0) {
		t.Errorf("facing should update on a blocked move, got %v", s.Facing())
	}
	if err := s.MoveTo(grid.Tile{X: -3}); !errors.Is(err, ErrTileUnavailable) {
		t.Errorf("MoveTo occupied tile: err = %v", err)
	}
}

func TestChooseStepGreedy(t *testing.T) {
	s := newTestSim(t)
	a := spawnAdversary(t, s, grid.Tile{X: 3, Z: 3})
	if got := s.ChooseStep(a); got != (grid.Tile{X: 2, Z: 2}) {
		t.Errorf("ChooseStep() = %v, expected (2,2)", got)
	}
}

func TestChooseStepTieBreakKeepsEnumerationOrder(t *testing.T) {
	s := newTestSim(t)
	a := spawnAdversary(t, s, grid.Tile{X: 3})
	spawnAdversary(t, s, grid.Tile{X: 2})

	// (2,-1) and (2,1) tie on every key; (2,-1) is enumerated first.
	if got := s.ChooseStep(a); got != (grid.Tile{X: 2, Z: -1}) {
		t.Errorf("ChooseStep() = %v, expected (2,-1)", got)
	}
}

func TestChooseStepHoldsWhenBoxedIn(t *testing.T) {
	s := newTestSim(t)
	a := spawnAdversary(t, s, grid.Tile{X: 5, Z: 5})
	for _, tile := range []grid.Tile{{X: 4, Z: 4}, {X: 4, Z: 5}, {X: 5, Z: 4}} {
		spawnAdversary(t, s, tile)
	}
	if got := s.ChooseStep(a); got != (grid.Tile{X: 5, Z: 5}) {
		t.Errorf("ChooseStep() = %v, expected to hold at (5,5)", got)
	}
}

func TestChooseStepPrefersDangerOnlyWhenForced(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dirs := []core.Vec3{core.V3(1, 0, 0), core.V3(-1, 0, 0), core.V3(0, 0, 1), core.V3(0, 0, -1)}

	for round := 0; round < 200; round++ {
		s := newTestSim(t, WithSeed(int64(round)))
		for i := 0; i < 1+rng.Intn(8); i++ {
			s.SpawnRandom()
		}
		for i := 0; i < 1+rng.Intn(3); i++ {
			tile := grid.Tile{X: rng.Intn(11) - 5, Z: rng.Intn(11) - 5}
			spawnProjectile(t, s, tile, dirs[rng.Intn(len(dirs))])
		}

		for _, h := range s.store.Adversaries() {
			cur := s.store.Tile(h)
			safeExists := false
			for oz := -1; oz <= 1; oz++ {
				for ox := -1; ox <= 1; ox++ {
					n := cur.Add(ox, oz)
					if (ox != 0 || oz != 0) && s.grid.InBounds(n) && !s.store.IsOccupied(n, h) && !s.IsDangerTile(n) {
						safeExists = true
					}
				}
			}
			got := s.ChooseStep(h)
			if safeExists && got != cur && s.IsDangerTile(got) {
				t.Fatalf("round %d: adversary at %v stepped into danger %v", round, cur, got)
			}
			if safeExists && got == cur {
				t.Fatalf("round %d: adversary at %v held despite a safe neighbor", round, cur)
			}
		}
	}
}

func TestCatchUpMoves(t *testing.T) {
	s := newTestSim(t)
	a := spawnAdversary(t, s, grid.Tile{X: 5, Z: 0})

	res := s.Tick(3.1)
	if res.Moves != 2 {
		t.Errorf("Moves = %d, expected 2", res.Moves)
	}
	if got := s.store.Tile(a); got != (grid.Tile{X: 3}) {
		t.Errorf("adversary at %v after two moves, expected (3,0)", got)
	}
	if res.Spawned != 0 {
		t.Errorf("Spawned = %d before the spawn interval", res.Spawned)
	}

	res = s.Tick(2.0)
	if res.Spawned != 1 {
		t.Errorf("Spawned = %d, expected 1", res.Spawned)
	}
}

func TestToggleMaxDifficultyResetsTimers(t *testing.T) {
	s := newTestSim(t)
	s.Tick(1.0)

	if !s.ToggleMaxDifficulty() || !s.MaxLocked() {
		t.Fatal("toggle should lock max difficulty")
	}
	if m, sp := s.Timers(); m != 0 || sp != 0 {
		t.Errorf("timers = %v/%v after toggle, expected 0", m, sp)
	}
	if s.MoveInterval() != 0.9 || s.SpawnInterval() != 2.8 {
		t.Errorf("locked intervals = %v/%v", s.MoveInterval(), s.SpawnInterval())
	}

	res := s.Tick(0.89)
	if res.Moves != 0 {
		t.Error("no move should fire before a full fresh interval")
	}
	res = s.Tick(0.02)
	if res.Moves != 1 {
		t.Errorf("Moves = %d, expected 1 after the locked interval", res.Moves)
	}

	s.ToggleMaxDifficulty()
	if s.MaxLocked() || s.MoveInterval() != 1.5 {
		t.Error("second toggle should unlock")
	}
}

func TestLongRunInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := config.DefaultArenaConfig()
		cfg.Difficulty.StartMaxLocked = true
		s, err := NewArena(cfg, WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		rng := rand.New(rand.NewSource(seed))
		dirs := []Direction{Left, Right, Forward, Back}

		lastScore := 0
		for tick := 0; tick < 3000 && s.State() == Playing; tick++ {
			if rng.Intn(10) == 0 {
				s.Move(dirs[rng.Intn(len(dirs))])
			}
			if rng.Intn(15) == 0 {
				s.Fire()
			}
			s.Tick(1.0 / 30)

			seen := map[grid.Tile]bool{s.PlayerTile(): true}
			if !s.grid.InBounds(s.PlayerTile()) {
				t.Fatalf("seed %d: player out of bounds", seed)
			}
			for _, h := range s.store.Adversaries() {
				tile := s.store.Tile(h)
				if !s.grid.InBounds(tile) {
					t.Fatalf("seed %d tick %d: adversary out of bounds at %v", seed, tick, tile)
				}
				if seen[tile] {
					t.Fatalf("seed %d tick %d: two pieces share %v", seed, tick, tile)
				}
				seen[tile] = true
			}
			for _, h := range s.store.Projectiles() {
				if tile := s.store.Tile(h); !s.grid.InBounds(tile) {
					t.Fatalf("seed %d tick %d: projectile out of bounds at %v", seed, tick, tile)
				}
			}
			if s.Score() < lastScore {
				t.Fatalf("seed %d: score decreased", seed)
			}
			if s.HighScore() < s.Score() {
				t.Fatalf("seed %d: high score %d below score %d", seed, s.HighScore(), s.Score())
			}
			lastScore = s.Score()
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []grid.Tile {
		cfg := config.DefaultArenaConfig()
		cfg.Adversaries.Initial = 3
		s, err := NewArena(cfg, WithSeed(99))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 600; i++ {
			if i%40 == 0 {
				s.Fire()
			}
			s.Tick(1.0 / 30)
		}
		var tiles []grid.Tile
		for _, h := range s.store.Adversaries() {
			tiles = append(tiles, s.store.Tile(h))
		}
		return append(tiles, grid.Tile{X: s.Score()})
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs diverged: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at %d: %v vs %v", i, a, b)
		}
	}
}
