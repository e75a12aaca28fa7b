package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameMerge(t *testing.T) {
	held := NewInputFrame()
	held.Set(ActionRight)

	f := NewInputFrame()
	f.Set(ActionPause)
	f.Merge(held)

	if !f.Has(ActionRight) || !f.Has(ActionPause) {
		t.Errorf("merged frame = %v", f.Actions)
	}
}

func TestActionIsHeld(t *testing.T) {
	tests := []struct {
		action Action
		held   bool
	}{
		{ActionLeft, true},
		{ActionRight, true},
		{ActionJump, true},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsHeld(); got != tc.held {
				t.Errorf("IsHeld() = %v, expected %v", got, tc.held)
			}
		})
	}
}
