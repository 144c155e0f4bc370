package sim

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score across runs.
// Implementations must not fail loudly: LoadHighScore returns 0 when nothing
// usable is stored and SaveHighScore swallows write errors.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// MemoryHighScores keeps the high score in memory only.
type MemoryHighScores struct {
	Value int
}

func (m *MemoryHighScores) LoadHighScore() int {
	return m.Value
}

func (m *MemoryHighScores) SaveHighScore(score int) {
	m.Value = score
}

// ScoreKeeper tracks the run score and keeps the persisted high score in step.
type ScoreKeeper struct {
	store   HighScoreStore
	logger  *log.Logger
	score   int
	high    int
	newHigh bool
}

// NewScoreKeeper reads the persisted high score once.
func NewScoreKeeper(store HighScoreStore, logger *log.Logger) *ScoreKeeper {
	if store == nil {
		store = &MemoryHighScores{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ScoreKeeper{
		store:  store,
		logger: logger,
		high:   max(0, store.LoadHighScore()),
	}
}

// Score returns the current run score.
func (k *ScoreKeeper) Score() int {
	return k.score
}

// HighScore returns the best known score.
func (k *ScoreKeeper) HighScore() int {
	return k.high
}

// NewHigh reports whether Finalize decided the run set a record.
func (k *ScoreKeeper) NewHigh() bool {
	return k.newHigh
}

// Add increases the score and persists it as soon as it beats the high score.
// Non-positive amounts are ignored so the score never decreases.
func (k *ScoreKeeper) Add(points int) {
	if points <= 0 {
		return
	}
	k.score += points
	if k.score > k.high {
		k.high = k.score
		k.store.SaveHighScore(k.score)
	}
}

// Finalize compares the final score against the value persisted right now,
// not the cached one, and stores it if it is a record.
func (k *ScoreKeeper) Finalize() bool {
	persisted := max(0, k.store.LoadHighScore())
	k.newHigh = k.score > 0 && k.score >= persisted
	if k.newHigh {
		k.store.SaveHighScore(k.score)
		k.high = k.score
		k.logger.Info("new high score", "score", k.score, "previous", persisted)
	} else {
		k.high = persisted
	}
	return k.newHigh
}
