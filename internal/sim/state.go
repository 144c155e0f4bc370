package sim

// State is the phase of a run.
type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// TogglePause switches between Playing and Paused.
// It does nothing once the run is over.
func (s *Sim) TogglePause() {
	switch s.state {
	case Playing:
		s.state = Paused
	case Paused:
		s.state = Playing
	}
	s.logger.Debug("pause toggled", "state", s.state)
}

// endRun freezes the run. Pieces stay in the store so the final board can
// still be drawn; Teardown removes them when the run is replaced.
func (s *Sim) endRun() {
	s.state = GameOver
	newHigh := s.scores.Finalize()
	s.logger.Info("game over",
		"score", s.scores.Score(),
		"high", s.scores.HighScore(),
		"new_high", newHigh,
		"elapsed", s.elapsed,
	)
}
