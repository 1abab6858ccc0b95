package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Push(PointerEvent(PointerMove, 12.5))
	f.Set(ActionRight)

	events := f.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Action != ActionLeft || events[2].Action != ActionRight {
		t.Errorf("actions out of order: %+v", events)
	}
	if events[1].Pointer != PointerMove || events[1].X != 12.5 {
		t.Errorf("pointer event = %+v", events[1])
	}
}

func TestInputFrameHasAndClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionConfirm) {
		t.Error("empty frame should not have Confirm")
	}

	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("frame should have Confirm after Set")
	}
	if f.Has(ActionPause) {
		t.Error("frame should not have Pause")
	}

	f.Clear()
	if len(f.Events()) != 0 {
		t.Errorf("Clear should drop events, got %d", len(f.Events()))
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action string = %q", Action(99).String())
	}
}
