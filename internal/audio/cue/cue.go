// Package cue names the game's sound effects. It has no audio dependencies,
// so the game core can trigger cues without linking a speaker backend.
package cue

// Cue names a sound effect.
type Cue int

const (
	Collect Cue = iota
	Miss
	Milestone
	Win
	Button
	count
)

func (c Cue) String() string {
	switch c {
	case Collect:
		return "collect"
	case Miss:
		return "miss"
	case Milestone:
		return "milestone"
	case Win:
		return "win"
	case Button:
		return "button"
	default:
		return "unknown"
	}
}

// All lists every cue.
func All() []Cue {
	out := make([]Cue, 0, count)
	for c := Cue(0); c < count; c++ {
		out = append(out, c)
	}
	return out
}
