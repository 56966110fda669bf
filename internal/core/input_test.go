package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionMute)
	f.Set(ActionJump)
	if !f.Has(ActionJump) || !f.Has(ActionMute) || f.Has(ActionPause) {
		t.Errorf("frame = %v", f)
	}
	if got := f.String(); got != "[Jump Mute]" {
		t.Errorf("String() = %q", got)
	}

	// Copies are independent
	saved := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !saved.Has(ActionJump) {
		t.Error("clearing a frame changed its copy")
	}
}

func TestInputFrameIgnoresInvalidActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(-1))
	f.Set(Action(99))

	if !f.Empty() {
		t.Errorf("invalid actions should be ignored, got %v", f)
	}
	if f.Has(ActionNone) || f.Has(Action(99)) {
		t.Error("Has should be false for invalid actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:     "None",
		ActionUsePower: "UsePower",
		ActionMute:     "Mute",
		Action(42):     "Unknown",
		Action(-3):     "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
