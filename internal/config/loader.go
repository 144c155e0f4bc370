package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const arenaFile = "arena.yaml"

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.arena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default.
// Only an explicit customPath reports read, parse and validation errors;
// broken files found on the search path are skipped.
func LoadArena(customPath string) (ArenaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseArena(data)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(arenaFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseArena(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", arenaFile)); err == nil {
		if cfg, err := parseArena(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseArena(defaultArenaYAML)
	if err != nil {
		return DefaultArenaConfig(), nil
	}
	return cfg, nil
}

// parseArena overlays data onto the built-in defaults and validates the
// result, so a file only needs the keys it changes.
func parseArena(data []byte) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArenaConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ArenaConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "configs", filename)
}

// ParsePreset converts a preset name, accepting the empty string as normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.MoveBase = 2.0
		cfg.Difficulty.SpawnBase = 6.5
		cfg.Projectile.Cooldown = 1.0
	case DifficultyHard:
		cfg.Difficulty.MoveBase = 1.2
		cfg.Difficulty.SpawnBase = 3.8
		cfg.Adversaries.Initial = 2
	case DifficultyFixed:
		cfg.Difficulty.SpeedupStep = 0
	case DifficultyMax:
		cfg.Difficulty.StartMaxLocked = true
	}
}
