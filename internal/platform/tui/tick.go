// Package tui provides the Bubble Tea integration for the arena.
// It handles the terminal UI loop, input mapping, and run bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of a single frame so a stalled
// terminal does not fast-forward the run.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}

// duplicateTick reports whether now is too close to last to belong to the
// same tick chain. Dropping such ticks leaves a single chain running.
func duplicateTick(last, now time.Time, tickRate int) bool {
	if last.IsZero() {
		return false
	}
	d := now.Sub(last)
	return d >= 0 && d < tickInterval(tickRate)/2
}

// frameDelta returns the seconds between two ticks. The first tick and
// clock jumps backwards yield zero.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	d := now.Sub(last)
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}
