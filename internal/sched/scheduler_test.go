package sched

import (
	"reflect"
	"testing"
	"time"
)

func TestEveryFiresPerPeriod(t *testing.T) {
	s := New()
	count := 0
	s.Every("tick", time.Second, 0, func() { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Errorf("fired early: count = %d", count)
	}

	s.Advance(time.Millisecond)
	if count != 1 {
		t.Errorf("count = %d after 1s, expected 1", count)
	}

	// Falling behind fires once per missed period
	s.Advance(3 * time.Second)
	if count != 4 {
		t.Errorf("count = %d after 4s, expected 4", count)
	}
	if s.Now() != 4*time.Second {
		t.Errorf("Now() = %v, expected 4s", s.Now())
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	count := 0
	task := s.After("clear", 900*time.Millisecond, func() { count++ })

	s.Advance(2 * time.Second)
	if count != 1 {
		t.Errorf("one-shot fired %d times", count)
	}
	if task.Active() {
		t.Error("one-shot should be inactive after firing")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestOrderingByDueThenPriority(t *testing.T) {
	s := New()
	var order []string
	s.Every("frame", 500*time.Millisecond, 0, func() { order = append(order, "frame") })
	s.Every("countdown", time.Second, 10, func() { order = append(order, "countdown") })
	s.Every("spawn", 1300*time.Millisecond, 5, func() { order = append(order, "spawn") })

	s.Advance(1300 * time.Millisecond)

	expected := []string{"frame", "countdown", "frame", "spawn"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
}

func TestStopDuringAdvanceSuppressesDueTask(t *testing.T) {
	s := New()
	var g Group
	frames := 0

	g.Add(s.Every("countdown", time.Second, 10, func() { g.Stop() }))
	g.Add(s.Every("frame", time.Second, 0, func() { frames++ }))

	// Both due at 1s: countdown runs first and stops the group.
	s.Advance(5 * time.Second)

	if frames != 0 {
		t.Errorf("frame fired %d times after group stop", frames)
	}
	if g.Active() {
		t.Error("group should be inactive")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestGroupStopReleasesAll(t *testing.T) {
	s := New()
	var g Group
	g.Add(s.Every("a", time.Second, 0, func() {}))
	g.Add(s.Every("b", time.Second, 0, func() {}))
	other := s.Every("c", time.Second, 0, func() {})

	g.Stop()
	s.Advance(time.Second)

	if s.Len() != 1 || !other.Active() {
		t.Errorf("only the ungrouped task should remain, Len() = %d", s.Len())
	}
}

func TestTaskAddedDuringAdvance(t *testing.T) {
	s := New()
	fired := false
	s.After("outer", 100*time.Millisecond, func() {
		s.After("inner", 100*time.Millisecond, func() { fired = true })
	})

	s.Advance(250 * time.Millisecond)
	if !fired {
		t.Error("task scheduled during Advance should fire within the same window")
	}
}

func TestEveryPanicsOnZeroPeriod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero period")
		}
	}()
	New().Every("bad", 0, 0, func() {})
}

func TestNilTaskStop(t *testing.T) {
	var task *Task
	task.Stop()
	if task.Active() {
		t.Error("nil task should not be active")
	}
}
