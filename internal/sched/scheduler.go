// Package sched provides a virtual-time scheduler for named recurring and
// one-shot tasks. The platform loop advances it once per tick, so every task
// runs on the caller's goroutine and each callback completes before the next
// begins.
package sched

import (
	"fmt"
	"time"
)

// Task is a scheduled callback. Recurring tasks fire every period; one-shot
// tasks fire once and then stop.
type Task struct {
	name     string
	period   time.Duration // 0 for one-shot tasks
	due      time.Duration
	priority int
	seq      uint64
	fn       func()
	stopped  bool
}

// Stop cancels the task. A stopped task never fires again, even if it was
// already due in the Advance currently running. Stop on nil is a no-op.
func (t *Task) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Active reports whether the task can still fire.
func (t *Task) Active() bool {
	return t != nil && !t.stopped
}

// Scheduler holds tasks against a virtual clock.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
	seq   uint64
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every schedules fn to run every period, first at Now()+period.
// Among tasks due at the same instant, higher priority runs first.
// Panics if period is not positive.
func (s *Scheduler) Every(name string, period time.Duration, priority int, fn func()) *Task {
	if period <= 0 {
		panic(fmt.Sprintf("sched: task %q has non-positive period %v", name, period))
	}
	return s.add(name, period, period, priority, fn)
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.add(name, 0, delay, 0, fn)
}

func (s *Scheduler) add(name string, period, delay time.Duration, priority int, fn func()) *Task {
	s.seq++
	t := &Task{
		name:     name,
		period:   period,
		due:      s.now + delay,
		priority: priority,
		seq:      s.seq,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt, firing every task that becomes due
// in (due time, priority, registration) order. A recurring task that falls
// behind fires once per missed period.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			t.stopped = true
		}
		t.fn()
	}

	s.now = target
	s.compact()
}

// nextDue returns the first task due at or before target, or nil.
func (s *Scheduler) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || before(t, best) {
			best = t
		}
	}
	return best
}

func before(a, b *Task) bool {
	if a.due != b.due {
		return a.due < b.due
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}

// compact drops stopped tasks.
func (s *Scheduler) compact() {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			s.tasks[n] = t
			n++
		}
	}
	for i := n; i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:n]
}

// Len returns the number of tasks that can still fire.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Group is a set of tasks released together.
type Group struct {
	tasks []*Task
}

// Add registers a task with the group and returns it.
func (g *Group) Add(t *Task) *Task {
	g.tasks = append(g.tasks, t)
	return t
}

// Stop cancels every task in the group at once.
func (g *Group) Stop() {
	for _, t := range g.tasks {
		t.Stop()
	}
	g.tasks = nil
}

// Active reports whether any task in the group can still fire.
func (g *Group) Active() bool {
	for _, t := range g.tasks {
		if t.Active() {
			return true
		}
	}
	return false
}
