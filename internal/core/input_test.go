package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true after Set")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) should be false")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameMovesKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveForward)
	f.Set(ActionFire)
	f.Set(ActionMoveLeft)
	f.Set(ActionMoveForward)

	moves := f.Moves()
	expected := []Action{ActionMoveForward, ActionMoveLeft, ActionMoveForward}
	if len(moves) != len(expected) {
		t.Fatalf("Moves() = %v, expected %v", moves, expected)
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("Moves()[%d] = %v, expected %v", i, moves[i], expected[i])
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveBack)
	f.Set(ActionDebug)

	c := f.Clone()
	f.Clear()

	if !f.Empty() || len(f.Moves()) != 0 {
		t.Error("Clear should drop all actions")
	}
	if !c.Has(ActionDebug) || len(c.Moves()) != 1 {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionMoveLeft, "MoveLeft"},
		{ActionMaxDifficulty, "MaxDifficulty"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
	if !ActionMoveBack.IsMove() || ActionFire.IsMove() {
		t.Error("IsMove classification is wrong")
	}
}
