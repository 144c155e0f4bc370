// Package config provides YAML-based arena configuration loading and
// difficulty presets.
package config

// ArenaConfig holds every tunable constant of the arena simulation.
type ArenaConfig struct {
	Grid        GridConfig       `yaml:"grid"`
	Player      PlayerConfig     `yaml:"player"`
	Projectile  ProjectileConfig `yaml:"projectile"`
	Adversaries AdversaryConfig  `yaml:"adversaries"`
	Timing      TimingConfig     `yaml:"timing"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size     int     `yaml:"size"`      // tiles per side, odd
	TileSize float64 `yaml:"tile_size"` // world units per tile
}

// PlayerConfig defines the player piece.
type PlayerConfig struct {
	HalfExtent float64 `yaml:"half_extent"`
}

// ProjectileConfig defines the fireball.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`         // world units per second
	Range        float64 `yaml:"range"`         // in tiles
	Radius       float64 `yaml:"radius"`        // collider half extent
	Cooldown     float64 `yaml:"cooldown"`      // seconds between shots
	MuzzleOffset float64 `yaml:"muzzle_offset"` // gap in front of the player
}

// AdversaryConfig defines adversary spawning and blast rules.
type AdversaryConfig struct {
	HalfExtent       float64 `yaml:"half_extent"`
	MinSpawnDistance int     `yaml:"min_spawn_distance"` // Chebyshev tiles from the player
	Initial          int     `yaml:"initial"`            // seeded at run start
	KillPoints       int     `yaml:"kill_points"`
	BlastRadius      int     `yaml:"blast_radius"`     // Chebyshev tiles
	DangerLookahead  int     `yaml:"danger_lookahead"` // tiles ahead of a projectile
}

// TimingConfig defines run-level timings.
type TimingConfig struct {
	SpawnSafetyTime float64 `yaml:"spawn_safety_time"` // grace period before contact ends a run
}

// DifficultyConfig defines how move and spawn cadence shrink with score.
type DifficultyConfig struct {
	MoveBase       float64 `yaml:"move_base"`
	MoveMin        float64 `yaml:"move_min"`
	SpawnBase      float64 `yaml:"spawn_base"`
	SpawnMin       float64 `yaml:"spawn_min"`
	SpeedupStep    float64 `yaml:"speedup_step"`   // seconds removed per step
	ScorePerStep   int     `yaml:"score_per_step"` // score needed for one step
	StartMaxLocked bool    `yaml:"start_max_locked"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
	DifficultyMax    DifficultyPreset = "max"
)

// Presets lists every accepted preset name.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, DifficultyMax}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
