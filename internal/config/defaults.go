package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Grid: GridConfig{
			Size:     11,
			TileSize: 1,
		},
		Player: PlayerConfig{
			HalfExtent: 0.45,
		},
		Projectile: ProjectileConfig{
			Speed:        6,
			Range:        4,
			Radius:       0.35,
			Cooldown:     1.5,
			MuzzleOffset: 0.05,
		},
		Adversaries: AdversaryConfig{
			HalfExtent:       0.45,
			MinSpawnDistance: 3,
			Initial:          0,
			KillPoints:       100,
			BlastRadius:      1,
			DangerLookahead:  2,
		},
		Timing: TimingConfig{
			SpawnSafetyTime: 0.2,
		},
		Difficulty: DifficultyConfig{
			MoveBase:     1.5,
			MoveMin:      0.9,
			SpawnBase:    5.0,
			SpawnMin:     2.8,
			SpeedupStep:  0.1,
			ScorePerStep: 1000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
