package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arena/internal/sim"
)

// HighScoreKeeper adapts a Store to sim.HighScoreStore for one mode.
// Database errors are logged and never reach the simulation.
type HighScoreKeeper struct {
	store  *Store
	mode   string
	logger *log.Logger
}

var _ sim.HighScoreStore = (*HighScoreKeeper)(nil)

// NewHighScoreKeeper creates a keeper for mode.
func NewHighScoreKeeper(store *Store, mode string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreKeeper{store: store, mode: mode, logger: logger}
}

// LoadHighScore returns the stored high score, or 0 on error.
func (k *HighScoreKeeper) LoadHighScore() int {
	score, err := k.store.HighScore(k.mode)
	if err != nil {
		k.logger.Warn("load high score", "mode", k.mode, "err", err)
		return 0
	}
	return score
}

// SaveHighScore persists score if it beats the stored one.
func (k *HighScoreKeeper) SaveHighScore(score int) {
	if err := k.store.RaiseHighScore(k.mode, score); err != nil {
		k.logger.Warn("save high score", "mode", k.mode, "score", score, "err", err)
	}
}
