package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the platform needs after each frame.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Paused    bool
	NewHigh   bool // set once the run ends with a new record
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Kills int // adversaries destroyed during this frame
}
