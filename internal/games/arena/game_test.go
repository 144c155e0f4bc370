package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-arena/internal/config"
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/registry"
	"github.com/vovakirdan/tile-arena/internal/sim"
)

const frameDT = 1.0 / 30

func newTestGame(t *testing.T, seed int64, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultArenaConfig(), opts...)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func render(g *Game) *core.Screen {
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	return scr
}

func TestGameDeterminism(t *testing.T) {
	// Scripted input: strafe and fire periodically.
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%45 == 0:
			inputs[i].Set(core.ActionFire)
		case i%90 == 20:
			inputs[i].Set(core.ActionMoveLeft)
		case i%90 == 65:
			inputs[i].Set(core.ActionMoveRight)
		case i%120 == 30:
			inputs[i].Set(core.ActionMoveForward)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for _, in := range inputs {
			if res := g.Step(in, frameDT); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Frame != snap2.Frame {
		t.Errorf("Determinism failed: frames differ. Run1=%d, Run2=%d", snap1.Frame, snap2.Frame)
	}
	if len(snap1.Adversaries) != len(snap2.Adversaries) {
		t.Errorf("Determinism failed: adversary counts differ. Run1=%d, Run2=%d",
			len(snap1.Adversaries), len(snap2.Adversaries))
	}
	if snap1.Spawned == 0 {
		t.Error("expected at least one adversary to spawn over 30 seconds")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 1)

	snap := g.Snapshot()
	if snap.State != sim.Playing.String() {
		t.Errorf("State = %q, want %q", snap.State, sim.Playing.String())
	}
	if snap.PlayerX != 0 || snap.PlayerZ != 0 {
		t.Errorf("player at (%d,%d), want center", snap.PlayerX, snap.PlayerZ)
	}
	if snap.FacingZ != 1 {
		t.Errorf("FacingZ = %d, want 1", snap.FacingZ)
	}
	if snap.Score != 0 || snap.Frame != 0 {
		t.Errorf("fresh run should have zero score and frame, got %d/%d", snap.Score, snap.Frame)
	}
}

func TestGameMoveAndFacing(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frameWith(core.ActionMoveLeft), frameDT)
	snap := g.Snapshot()
	if snap.PlayerX != 1 || snap.PlayerZ != 0 {
		t.Errorf("after left: player at (%d,%d), want (1,0)", snap.PlayerX, snap.PlayerZ)
	}
	if snap.FacingX != 1 || snap.FacingZ != 0 {
		t.Errorf("after left: facing (%d,%d), want (1,0)", snap.FacingX, snap.FacingZ)
	}

	g.Step(frameWith(core.ActionMoveBack), frameDT)
	snap = g.Snapshot()
	if snap.PlayerX != 1 || snap.PlayerZ != -1 {
		t.Errorf("after back: player at (%d,%d), want (1,-1)", snap.PlayerX, snap.PlayerZ)
	}
}

func TestGameFireSpawnsProjectile(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frameWith(core.ActionFire), frameDT)
	if n := len(g.Snapshot().Projectiles); n != 1 {
		t.Fatalf("projectiles = %d, want 1", n)
	}

	// Cooldown blocks the second shot.
	g.Step(frameWith(core.ActionFire), frameDT)
	if n := len(g.Snapshot().Projectiles); n != 1 {
		t.Errorf("projectiles after early refire = %d, want 1", n)
	}
}

func TestGamePauseFreezesRun(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(frameWith(core.ActionPause), frameDT)
	if !res.State.Paused {
		t.Fatal("pause action should pause the run")
	}
	elapsed := g.Sim().Elapsed()

	g.Step(frameWith(core.ActionMoveLeft), 1.0)
	if g.Sim().Elapsed() != elapsed {
		t.Error("elapsed time should not advance while paused")
	}
	if g.Snapshot().PlayerX != 0 {
		t.Error("moves should be ignored while paused")
	}
	if !strings.Contains(render(g).String(), "PAUSED") {
		t.Error("paused overlay should be drawn")
	}

	res = g.Step(frameWith(core.ActionPause), frameDT)
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRestartFromPause(t *testing.T) {
	g := newTestGame(t, 3)
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}
	g.Step(frameWith(core.ActionPause), frameDT)
	if g.Sim().State() != sim.Paused {
		t.Fatal("run should be paused")
	}
	before := g.Seed()

	// Restart is ignored while playing.
	g.Step(frameWith(core.ActionPause), frameDT)
	g.Step(frameWith(core.ActionRestart), frameDT)
	if g.Sim().Elapsed() == 0 {
		t.Fatal("restart should be ignored while playing")
	}

	g.Step(frameWith(core.ActionPause), frameDT)
	res := g.Step(frameWith(core.ActionRestart), frameDT)
	if res.State.Paused || res.State.GameOver {
		t.Fatalf("state after restart = %+v, want a running game", res.State)
	}
	if g.Sim().State() != sim.Playing {
		t.Errorf("sim state = %v, want playing", g.Sim().State())
	}
	if e := g.Sim().Elapsed(); e != 0 {
		t.Errorf("elapsed after restart = %v, want 0", e)
	}
	if g.Seed() == before {
		t.Error("restart should draw a new seed")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	hs := &sim.MemoryHighScores{}
	g := newTestGame(t, 7, WithHighScores(hs))

	g.Sim().AddScore(100)
	if _, err := g.Sim().SpawnAdversary(grid.Tile{X: 1, Z: 0}); err != nil {
		t.Fatalf("SpawnAdversary: %v", err)
	}

	res := g.Step(core.NewInputFrame(), 0.5)
	if !res.State.GameOver {
		t.Fatal("adjacent adversary after the safety window should end the run")
	}
	if !res.State.NewHigh {
		t.Error("first positive score should be a new high")
	}
	if hs.Value != 100 {
		t.Errorf("persisted high = %d, want 100", hs.Value)
	}

	out := render(g).String()
	for _, want := range []string{"GAME OVER", "NEW HIGH", "Score: 100"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	// Other input is ignored until restart.
	g.Step(frameWith(core.ActionFire), frameDT)
	if n := len(g.Snapshot().Projectiles); n != 0 {
		t.Errorf("fire after game over created %d projectiles", n)
	}

	res = g.Step(frameWith(core.ActionRestart), frameDT)
	if res.State.GameOver {
		t.Fatal("restart should start a new run")
	}
	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, want 0", res.State.Score)
	}
	if res.State.HighScore != 100 {
		t.Errorf("high score after restart = %d, want 100", res.State.HighScore)
	}
	if n := g.Sim().Store().AdversaryCount(); n != 0 {
		t.Errorf("adversaries after restart = %d, want 0", n)
	}
}

func TestGameObserverCounters(t *testing.T) {
	g := newTestGame(t, 3)

	h, err := g.Sim().SpawnAdversary(grid.Tile{X: 4, Z: 4})
	if err != nil {
		t.Fatalf("SpawnAdversary: %v", err)
	}
	if got := g.Snapshot().Spawned; got != 1 {
		t.Errorf("Spawned = %d, want 1", got)
	}

	if killed := g.Sim().ExplodeAt(g.Sim().Store().Center(h)); killed != 1 {
		t.Fatalf("ExplodeAt killed %d, want 1", killed)
	}
	snap := g.Snapshot()
	if snap.Destroyed != 1 {
		t.Errorf("Destroyed = %d, want 1", snap.Destroyed)
	}
	if snap.Score != 100 {
		t.Errorf("Score = %d, want 100", snap.Score)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 1)
	if _, err := g.Sim().SpawnAdversary(grid.Tile{X: 3, Z: -2}); err != nil {
		t.Fatalf("SpawnAdversary: %v", err)
	}

	scr := render(g)

	px, py := g.tileToScreen(scr, grid.Tile{})
	if r := scr.Get(px, py); r != '@' {
		t.Errorf("center cell = %q, want '@'", r)
	}
	if r := scr.Get(px+1, py); r != '^' {
		t.Errorf("facing arrow = %q, want '^'", r)
	}

	ax, ay := g.tileToScreen(scr, grid.Tile{X: 3, Z: -2})
	if r := scr.Get(ax, ay); r != 'A' {
		t.Errorf("adversary cell = %q, want 'A'", r)
	}
	// +X is drawn to the left of the player, -Z below.
	if ax >= px || ay <= py {
		t.Errorf("adversary at screen (%d,%d) should be left of and below (%d,%d)", ax, ay, px, py)
	}

	out := scr.String()
	for _, want := range []string{"TILE ARENA", "Score 0", "Fire"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frameWith(core.ActionDebug, core.ActionFire), 0)
	if !g.DangerOverlay() {
		t.Fatal("debug action should enable the danger overlay")
	}

	scr := render(g)
	if !strings.Contains(scr.String(), "[DEBUG]") {
		t.Error("debug marker should be drawn")
	}
	// The shot leaves the muzzle heading +Z, so the tiles ahead of it are marked.
	x, y := g.tileToScreen(scr, grid.Tile{X: 0, Z: 3})
	if cell := scr.GetCell(x, y); cell.Rune != '░' || cell.Color != core.ColorRed {
		t.Errorf("danger tile drawn as %q/%v", cell.Rune, cell.Color)
	}
	x, y = g.tileToScreen(scr, grid.Tile{X: 3, Z: 0})
	if r := scr.Get(x, y); r != '·' {
		t.Errorf("safe tile drawn as %q", r)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(30, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Error("small screens should show the size hint")
	}
}

func TestMaxModeStartsLocked(t *testing.T) {
	if !registry.Exists(ModeID(config.DifficultyMax)) {
		t.Fatalf("%s should be registered", ModeID(config.DifficultyMax))
	}
	rg, err := registry.Create(ModeID(config.DifficultyMax), registry.Deps{Config: config.DefaultArenaConfig()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	rg.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	g := rg.(*Game)
	if !g.Sim().MaxLocked() {
		t.Error("max preset should start with difficulty locked")
	}
	if !strings.Contains(render(g).String(), "(MAX)") {
		t.Error("HUD should mark max difficulty")
	}

	g.Step(frameWith(core.ActionMaxDifficulty), frameDT)
	if g.Sim().MaxLocked() {
		t.Error("max toggle should unlock")
	}
}

func TestSnapshotEncoding(t *testing.T) {
	g := newTestGame(t, 9)
	g.Step(frameWith(core.ActionFire), frameDT)
	snap := g.Snapshot()

	b, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if got.Hash() != snap.Hash() {
		t.Error("decoded snapshot should hash the same")
	}
	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Error("garbage input should fail to decode")
	}
}
