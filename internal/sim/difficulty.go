package sim

import "github.com/vovakirdan/tile-arena/internal/config"

// Difficulty runs the two cadence timers. Intervals come from the score
// through config.DifficultyManager.
type Difficulty struct {
	mgr        *config.DifficultyManager
	moveTimer  float64
	spawnTimer float64
}

// NewDifficulty creates the controller with both timers at zero.
func NewDifficulty(cfg config.DifficultyConfig) *Difficulty {
	return &Difficulty{mgr: config.NewDifficultyManager(cfg)}
}

// Advance adds dt to both timers and reports how many adversary move ticks
// and spawn attempts are due. Both intervals are read once per call; a large
// dt yields several firings.
func (d *Difficulty) Advance(dt float64, score int) (moves, spawns int) {
	mi := d.mgr.MoveInterval(score)
	si := d.mgr.SpawnInterval(score)

	d.moveTimer += dt
	for d.moveTimer >= mi {
		d.moveTimer -= mi
		moves++
	}
	d.spawnTimer += dt
	for d.spawnTimer >= si {
		d.spawnTimer -= si
		spawns++
	}
	return moves, spawns
}

// Locked reports whether the max-difficulty lock is on.
func (d *Difficulty) Locked() bool {
	return d.mgr.Locked()
}

// SetMaxLocked sets the lock and restarts both timers so the next action
// waits a full interval at the new rate.
func (d *Difficulty) SetMaxLocked(locked bool) {
	d.mgr.SetLocked(locked)
	d.moveTimer = 0
	d.spawnTimer = 0
}

// Steps returns the speedup steps earned at score.
func (d *Difficulty) Steps(score int) int {
	return d.mgr.Steps(score)
}

// MoveInterval returns the current seconds between adversary moves.
func (d *Difficulty) MoveInterval(score int) float64 {
	return d.mgr.MoveInterval(score)
}

// SpawnInterval returns the current seconds between spawn attempts.
func (d *Difficulty) SpawnInterval(score int) float64 {
	return d.mgr.SpawnInterval(score)
}

// Timers returns the move and spawn accumulators.
func (d *Difficulty) Timers() (move, spawn float64) {
	return d.moveTimer, d.spawnTimer
}
