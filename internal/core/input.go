package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionMoveLeft             // A - step toward +X
	ActionMoveRight            // D - step toward -X
	ActionMoveForward          // W - step toward +Z
	ActionMoveBack             // S - step toward -Z
	ActionFire                 // Space - launch a projectile
	ActionPause                // P - pause/unpause
	ActionMaxDifficulty        // I - toggle max difficulty lock
	ActionDebug                // T - toggle danger overlay
	ActionRestart              // R - restart after game over
	ActionQuit                 // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionMoveLeft:      "MoveLeft",
	ActionMoveRight:     "MoveRight",
	ActionMoveForward:   "MoveForward",
	ActionMoveBack:      "MoveBack",
	ActionFire:          "Fire",
	ActionPause:         "Pause",
	ActionMaxDifficulty: "MaxDifficulty",
	ActionDebug:         "Debug",
	ActionRestart:       "Restart",
	ActionQuit:          "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "Unknown"
}

// IsMove reports whether a is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionMoveLeft && a <= ActionMoveBack
}

// InputFrame collects the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	// order preserves the sequence moves were pressed in.
	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if !f.Actions[a] || a.IsMove() {
		f.order = append(f.order, a)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Moves returns the movement actions in press order, repeats included.
func (f InputFrame) Moves() []Action {
	var out []Action
	for _, a := range f.order {
		if a.IsMove() {
			out = append(out, a)
		}
	}
	return out
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.order = append([]Action(nil), f.order...)
	return clone
}
