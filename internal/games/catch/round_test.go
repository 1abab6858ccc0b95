package catch

import (
	"testing"
	"time"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/sched"
)

const testFrame = time.Second / 60

type roundRecorder struct {
	events []Event
	ends   []int
}

func newTestRound(t *testing.T, cfg config.CatchConfig) (*Round, *sched.Scheduler, *roundRecorder) {
	t.Helper()
	s := sched.New()
	rec := &roundRecorder{}
	g := Derive(Viewport{W: 600, H: 500}, cfg, cfg.Window)
	r := NewRound(s, cfg, g, NewSpawner(1, cfg.Spawn.HarmfulChance), testFrame, Hooks{
		OnEvent: func(ev Event) { rec.events = append(rec.events, ev) },
		OnEnd:   func(score int) { rec.ends = append(rec.ends, score) },
	})
	return r, s, rec
}

func advanceFrames(s *sched.Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Advance(testFrame)
	}
}

func TestRoundStartsIdle(t *testing.T) {
	r, s, _ := newTestRound(t, config.DefaultCatchConfig())

	if r.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, expected idle", r.Phase())
	}
	if s.Len() != 0 {
		t.Errorf("idle round scheduled %d tasks", s.Len())
	}
}

func TestRoundStartResets(t *testing.T) {
	r, _, _ := newTestRound(t, config.DefaultCatchConfig())
	r.state = RoundState{
		Score:           12,
		TimeLeft:        3,
		Phase:           PhaseEnded,
		MilestoneCursor: 2,
		Entities:        []Entity{{X: 1}, {X: 2}},
		CatcherX:        0,
	}

	r.Start()
	st := r.State()

	if st.Score != 0 || st.TimeLeft != 30 || st.MilestoneCursor != 0 {
		t.Errorf("state not reset: %+v", st)
	}
	if len(st.Entities) != 0 {
		t.Errorf("entities not cleared: %d", len(st.Entities))
	}
	if st.CatcherX != CenterCatcher(r.Geometry()) {
		t.Errorf("catcher not centered: %v", st.CatcherX)
	}
	if st.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", st.Phase)
	}
}

func TestRoundCountdownAndSpawn(t *testing.T) {
	r, s, _ := newTestRound(t, config.DefaultCatchConfig())
	r.Start()

	// time.Second/60 truncates, so 60 frames fall just short of a second.
	advanceFrames(s, 61)
	if got := r.State().TimeLeft; got != 29 {
		t.Errorf("after 1s TimeLeft = %d, expected 29", got)
	}

	// 1300ms spawn interval: one spawn within the first 1.3s.
	st := r.State()
	if len(st.Entities) != 0 {
		t.Errorf("spawned %d entities before the first interval", len(st.Entities))
	}
	advanceFrames(s, 18)
	if got := len(r.State().Entities); got != 1 {
		t.Errorf("after 1.3s %d entities, expected 1", got)
	}
}

func TestRoundEnds(t *testing.T) {
	r, s, rec := newTestRound(t, config.DefaultCatchConfig())
	r.Start()
	r.state.Score = 9

	advanceFrames(s, 30*60+1)

	st := r.State()
	if st.Phase != PhaseEnded {
		t.Fatalf("Phase = %v, expected ended", st.Phase)
	}
	if st.TimeLeft != 0 {
		t.Errorf("TimeLeft = %d, expected 0", st.TimeLeft)
	}
	if len(st.Entities) != 0 {
		t.Errorf("%d entities left after end", len(st.Entities))
	}
	if r.Scheduled() || s.Len() != 0 {
		t.Errorf("round tasks still scheduled after end: %d", s.Len())
	}
	if len(rec.ends) != 1 {
		t.Fatalf("OnEnd called %d times, expected 1", len(rec.ends))
	}

	// Nothing happens after the end.
	score := st.Score
	advanceFrames(s, 600)
	if r.State().Score != score || len(r.State().Entities) != 0 || len(rec.ends) != 1 {
		t.Error("round kept running after the end")
	}
}

func TestRoundCountdownBeforeFrame(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Round.Duration = time.Second
	s := sched.New()
	g := Derive(Viewport{W: 600, H: 500}, cfg, cfg.Window)

	scoredAfterEnd := false
	var r *Round
	r = NewRound(s, cfg, g, NewSpawner(1, 0), time.Second, Hooks{
		OnEvent: func(Event) {
			if r.Phase() != PhaseRunning {
				scoredAfterEnd = true
			}
		},
	})
	r.Start()
	// Due at the same instant as the countdown's last tick.
	r.state.Entities = []Entity{{X: g.W / 2, Y: g.CatcherY, Kind: Beneficial}}

	s.Advance(time.Second)

	if r.Phase() != PhaseEnded {
		t.Fatalf("Phase = %v, expected ended", r.Phase())
	}
	if r.State().Score != 0 || scoredAfterEnd {
		t.Error("frame ran after the countdown expired")
	}
}

func TestRoundRestartDoesNotAccumulateTasks(t *testing.T) {
	r, s, _ := newTestRound(t, config.DefaultCatchConfig())

	for i := 0; i < 5; i++ {
		r.Start()
		advanceFrames(s, 10)
	}
	if got := s.Len(); got != 3 {
		t.Errorf("scheduler has %d tasks after repeated restarts, expected 3", got)
	}

	advanceFrames(s, 60)
	if got := r.State().TimeLeft; got != 29 {
		t.Errorf("TimeLeft = %d, expected 29 (one countdown)", got)
	}
}

func TestRoundRestartFromEnded(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Round.Duration = 2 * time.Second
	r, s, _ := newTestRound(t, cfg)
	r.Start()
	advanceFrames(s, 121)
	if r.Phase() != PhaseEnded {
		t.Fatalf("Phase = %v, expected ended", r.Phase())
	}

	r.Start()
	if st := r.State(); st.Phase != PhaseRunning || st.TimeLeft != 2 || st.Score != 0 {
		t.Errorf("restart state = %+v", st)
	}
	if s.Len() != 3 {
		t.Errorf("restart scheduled %d tasks, expected 3", s.Len())
	}
}

func TestRoundIdle(t *testing.T) {
	r, _, _ := newTestRound(t, config.DefaultCatchConfig())

	r.Start()
	r.Idle()
	if r.Phase() != PhaseRunning {
		t.Error("Idle should not interrupt a running round")
	}

	r.end()
	r.Idle()
	if r.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, expected idle", r.Phase())
	}
}

func TestRoundResizeClampsCatcher(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	r, _, _ := newTestRound(t, cfg)
	r.Start()
	r.state.CatcherX = r.Geometry().MaxCatcherX()

	small := Derive(Viewport{W: 320, H: 400}, cfg, cfg.Window)
	r.Resize(small)

	if x := r.State().CatcherX; x > small.MaxCatcherX() {
		t.Errorf("catcher x %v beyond new max %v", x, small.MaxCatcherX())
	}
}

func TestRoundStateIsCopy(t *testing.T) {
	r, s, _ := newTestRound(t, config.DefaultCatchConfig())
	r.Start()
	advanceFrames(s, 80)

	st := r.State()
	if len(st.Entities) == 0 {
		t.Fatal("expected a spawned entity")
	}
	st.Entities[0].Y = -999
	if r.State().Entities[0].Y == -999 {
		t.Error("State() exposed the internal entity slice")
	}
}
