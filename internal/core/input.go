package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionConfirm        // Enter, Space - start or restart a round
	ActionPause          // P - pause/unpause the round
	ActionMute           // M - toggle audio cues
	ActionBack           // Esc - leave the end screen
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the positional input sources.
type PointerKind int

const (
	PointerNone  PointerKind = iota
	PointerMove              // mouse hover / cursor motion
	TouchStart               // first finger down (or mouse press)
	TouchMove                // finger drag (or mouse drag)
	TouchEnd                 // finger lifted
)

// InputEvent is one discrete input report. Either Action is set, or Pointer
// is set together with X in play-area coordinates.
type InputEvent struct {
	Action  Action
	Pointer PointerKind
	X       float64
}

// KeyEvent builds an action event.
func KeyEvent(a Action) InputEvent {
	return InputEvent{Action: a}
}

// PointerEvent builds a positional event.
func PointerEvent(kind PointerKind, x float64) InputEvent {
	return InputEvent{Pointer: kind, X: x}
}

// InputFrame collects the input events that arrived during one tick, in
// arrival order. Events are applied before the frame is simulated.
type InputFrame struct {
	events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev InputEvent) {
	f.events = append(f.events, ev)
}

// Set appends an action event to the frame.
func (f *InputFrame) Set(a Action) {
	f.Push(KeyEvent(a))
}

// Events returns the queued events in arrival order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// Clear drops all queued events, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}
