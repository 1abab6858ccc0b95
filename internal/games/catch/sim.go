package catch

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// RoundState is everything that changes during a round.
type RoundState struct {
	Score           int
	TimeLeft        int // seconds
	Phase           Phase
	MilestoneCursor int
	Entities        []Entity
	CatcherX        float64 // left edge
}

// EventKind identifies a scoring event.
type EventKind int

const (
	EventCollected EventKind = iota
	EventPollutant
	EventMissed
	EventMilestone
)

func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventPollutant:
		return "pollutant"
	case EventMissed:
		return "missed"
	case EventMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Threshold is set for EventMilestone only.
type Event struct {
	Kind      EventKind
	Threshold int
}

// Scoring deltas.
const (
	CollectPoints   = 1
	PollutantPoints = 2
	MissPoints      = 1
)

// Step advances every entity by one frame and resolves catches and misses.
// Events are returned in emission order.
func Step(rs *RoundState, g Geometry, milestones []int) []Event {
	var events []Event
	catcher := catcherBox(rs.CatcherX, g)

	kept := rs.Entities[:0]
	for _, e := range rs.Entities {
		e.Y += g.FallSpeed(e.Kind)

		if e.Bottom(g) >= catcher.Y && catcher.SpansX(e.X) {
			if e.Kind == Harmful {
				rs.Score = max(0, rs.Score-PollutantPoints)
				events = append(events, Event{Kind: EventPollutant})
				continue
			}
			rs.Score += CollectPoints
			events = append(events, Event{Kind: EventCollected})
			if rs.MilestoneCursor < len(milestones) && rs.Score >= milestones[rs.MilestoneCursor] {
				events = append(events, Event{Kind: EventMilestone, Threshold: milestones[rs.MilestoneCursor]})
				rs.MilestoneCursor++
			}
			continue
		}

		if e.Y > g.H+g.Radius {
			if e.Kind == Beneficial {
				rs.Score = max(0, rs.Score-MissPoints)
				events = append(events, Event{Kind: EventMissed})
			}
			continue
		}

		kept = append(kept, e)
	}

	for i := len(kept); i < len(rs.Entities); i++ {
		rs.Entities[i] = Entity{}
	}
	rs.Entities = kept
	return events
}
