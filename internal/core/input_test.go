package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionJump)

	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Error("NewInputFrame() should set the given actions")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should not share state with the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero InputFrame should have no actions")
	}
	zero.Set(ActionRestart)
	if !zero.Has(ActionRestart) {
		t.Error("Set() on zero InputFrame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionAdvance, "Advance"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestEventString(t *testing.T) {
	e := Event{Kind: EventItemPickedUp, Col: 3, Row: 4, Pitch: 0.99}
	if got := e.String(); got != "item-picked-up at (3,4) pitch=0.99" {
		t.Errorf("String() = %q", got)
	}

	e = Event{Kind: EventLevelCompleted}
	if got := e.String(); got != "level-completed" {
		t.Errorf("String() = %q", got)
	}
}
