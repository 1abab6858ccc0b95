package catch

import (
	"time"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/sched"
)

// Task priorities among tasks due at the same instant. The countdown runs
// first so that no scoring happens after the timer expires.
const (
	priorityCountdown = 2
	prioritySpawn     = 1
	priorityFrame     = 0
)

// Task names, visible in logs and tests.
const (
	TaskCountdown = "countdown"
	TaskSpawn     = "spawn"
	TaskFrame     = "frame"
)

// Hooks receive round output. Either may be nil.
type Hooks struct {
	OnEvent func(Event)
	OnEnd   func(finalScore int)
}

// Round owns the RoundState and is the only code that mutates it. It drives
// the countdown, spawn, and frame tasks on a shared scheduler.
type Round struct {
	cfg     config.CatchConfig
	geom    Geometry
	state   RoundState
	sched   *sched.Scheduler
	tasks   sched.Group
	spawner *Spawner
	frame   time.Duration
	hooks   Hooks
}

// NewRound creates an idle round.
func NewRound(s *sched.Scheduler, cfg config.CatchConfig, geom Geometry, spawner *Spawner, frame time.Duration, hooks Hooks) *Round {
	return &Round{
		cfg:     cfg,
		geom:    geom,
		state:   RoundState{Phase: PhaseIdle, TimeLeft: durationSeconds(cfg.Round.Duration)},
		sched:   s,
		spawner: spawner,
		frame:   frame,
		hooks:   hooks,
	}
}

func durationSeconds(d time.Duration) int {
	return int(d / time.Second)
}

// Start begins a new round from any phase. Tasks of a previous round are
// stopped before the new ones are scheduled.
func (r *Round) Start() {
	r.tasks.Stop()

	for i := range r.state.Entities {
		r.state.Entities[i] = Entity{}
	}
	r.state = RoundState{
		Score:    0,
		TimeLeft: durationSeconds(r.cfg.Round.Duration),
		Phase:    PhaseRunning,
		Entities: r.state.Entities[:0],
		CatcherX: CenterCatcher(r.geom),
	}

	r.tasks.Add(r.sched.Every(TaskCountdown, time.Second, priorityCountdown, r.tick))
	r.tasks.Add(r.sched.Every(TaskSpawn, r.geom.SpawnInterval, prioritySpawn, r.spawn))
	r.tasks.Add(r.sched.Every(TaskFrame, r.frame, priorityFrame, r.step))
}

func (r *Round) tick() {
	r.state.TimeLeft--
	if r.state.TimeLeft <= 0 {
		r.state.TimeLeft = 0
		r.end()
	}
}

func (r *Round) spawn() {
	r.state.Entities = append(r.state.Entities, r.spawner.Spawn(r.geom))
}

func (r *Round) step() {
	events := Step(&r.state, r.geom, r.cfg.Round.Milestones)
	if r.hooks.OnEvent == nil {
		return
	}
	for _, ev := range events {
		r.hooks.OnEvent(ev)
	}
}

func (r *Round) end() {
	r.tasks.Stop()
	for i := range r.state.Entities {
		r.state.Entities[i] = Entity{}
	}
	r.state.Entities = r.state.Entities[:0]
	r.state.Phase = PhaseEnded
	if r.hooks.OnEnd != nil {
		r.hooks.OnEnd(r.state.Score)
	}
}

// Stop halts the round without ending it, e.g. when a session closes.
func (r *Round) Stop() {
	r.tasks.Stop()
}

// Idle returns an ended round to the start screen.
func (r *Round) Idle() {
	if r.state.Phase == PhaseRunning {
		return
	}
	r.state.Phase = PhaseIdle
}

// Input applies one movement event.
func (r *Round) Input(ev core.InputEvent) {
	ApplyInput(&r.state, ev, r.geom)
}

// Resize re-derives geometry and keeps the catcher inside the new bounds.
// Entity positions are left as they are.
func (r *Round) Resize(geom Geometry) {
	r.geom = geom
	r.state.CatcherX = ClampCatcher(r.state.CatcherX, geom)
}

// State returns a copy of the round state. The entity slice is copied.
func (r *Round) State() RoundState {
	st := r.state
	st.Entities = append([]Entity(nil), r.state.Entities...)
	return st
}

// Geometry returns the current geometry.
func (r *Round) Geometry() Geometry {
	return r.geom
}

// Phase returns the lifecycle phase.
func (r *Round) Phase() Phase {
	return r.state.Phase
}

// Scheduled reports whether any round task can still fire.
func (r *Round) Scheduled() bool {
	return r.tasks.Active()
}
