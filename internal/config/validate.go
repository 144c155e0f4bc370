package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that cfg describes a playable arena.
func (cfg ArenaConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(cfg.Grid.Size >= 3 && cfg.Grid.Size%2 == 1, "grid.size %d must be odd and >= 3", cfg.Grid.Size)
	check(cfg.Grid.TileSize > 0, "grid.tile_size must be positive")
	check(cfg.Player.HalfExtent > 0, "player.half_extent must be positive")

	check(cfg.Projectile.Speed > 0, "projectile.speed must be positive")
	check(cfg.Projectile.Range > 0, "projectile.range must be positive")
	check(cfg.Projectile.Radius > 0, "projectile.radius must be positive")
	check(cfg.Projectile.Cooldown >= 0, "projectile.cooldown must not be negative")
	check(cfg.Projectile.MuzzleOffset >= 0, "projectile.muzzle_offset must not be negative")

	check(cfg.Adversaries.HalfExtent > 0, "adversaries.half_extent must be positive")
	check(cfg.Adversaries.MinSpawnDistance >= 1, "adversaries.min_spawn_distance must be >= 1")
	check(cfg.Adversaries.Initial >= 0, "adversaries.initial must not be negative")
	check(cfg.Adversaries.KillPoints >= 0, "adversaries.kill_points must not be negative")
	check(cfg.Adversaries.BlastRadius >= 0, "adversaries.blast_radius must not be negative")
	check(cfg.Adversaries.DangerLookahead >= 1, "adversaries.danger_lookahead must be >= 1")

	check(cfg.Timing.SpawnSafetyTime >= 0, "timing.spawn_safety_time must not be negative")

	d := cfg.Difficulty
	check(d.MoveMin > 0, "difficulty.move_min must be positive")
	check(d.SpawnMin > 0, "difficulty.spawn_min must be positive")
	check(d.MoveBase >= d.MoveMin, "difficulty.move_base %.2f is below move_min %.2f", d.MoveBase, d.MoveMin)
	check(d.SpawnBase >= d.SpawnMin, "difficulty.spawn_base %.2f is below spawn_min %.2f", d.SpawnBase, d.SpawnMin)
	check(d.SpeedupStep >= 0, "difficulty.speedup_step must not be negative")
	check(d.ScorePerStep > 0, "difficulty.score_per_step must be positive")

	return errors.Join(errs...)
}
