package catch

import (
	"time"

	"github.com/vovakirdan/dropcatch/internal/sched"
)

// Feedback is the transient message line. Each Show replaces the text and
// restarts the clear timer.
type Feedback struct {
	sched    *sched.Scheduler
	duration time.Duration
	text     string
	kind     EventKind
	clear    *sched.Task
}

// NewFeedback creates an empty feedback line.
func NewFeedback(s *sched.Scheduler, duration time.Duration) *Feedback {
	return &Feedback{sched: s, duration: duration}
}

// Show displays text until the duration elapses or another message arrives.
func (f *Feedback) Show(text string, kind EventKind) {
	f.clear.Stop()
	f.text = text
	f.kind = kind
	f.clear = f.sched.After("feedback", f.duration, f.Reset)
}

// Reset clears the message and cancels the pending clear.
func (f *Feedback) Reset() {
	f.clear.Stop()
	f.clear = nil
	f.text = ""
}

// Text returns the visible message, or "".
func (f *Feedback) Text() string {
	return f.text
}

// Kind returns the event kind of the visible message.
func (f *Feedback) Kind() EventKind {
	return f.kind
}
