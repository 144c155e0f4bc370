package config

import "math"

// DifficultyManager derives move and spawn intervals from score.
type DifficultyManager struct {
	cfg    DifficultyConfig
	locked bool
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, locked: cfg.StartMaxLocked}
}

// Locked reports whether the max-difficulty override is on.
func (d *DifficultyManager) Locked() bool {
	return d.locked
}

// SetLocked turns the max-difficulty override on or off.
func (d *DifficultyManager) SetLocked(locked bool) {
	d.locked = locked
}

// Steps returns the number of speedup steps earned at score.
func (d *DifficultyManager) Steps(score int) int {
	if d.cfg.ScorePerStep <= 0 || score <= 0 {
		return 0
	}
	return score / d.cfg.ScorePerStep
}

// MoveInterval returns seconds between adversary moves.
func (d *DifficultyManager) MoveInterval(score int) float64 {
	if d.locked {
		return d.cfg.MoveMin
	}
	return math.Max(d.cfg.MoveMin, d.cfg.MoveBase-float64(d.Steps(score))*d.cfg.SpeedupStep)
}

// SpawnInterval returns seconds between spawn attempts.
func (d *DifficultyManager) SpawnInterval(score int) float64 {
	if d.locked {
		return d.cfg.SpawnMin
	}
	return math.Max(d.cfg.SpawnMin, d.cfg.SpawnBase-float64(d.Steps(score))*d.cfg.SpeedupStep)
}
