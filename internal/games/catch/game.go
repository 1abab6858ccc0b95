// Package catch implements the falling-object catcher: the player moves a
// bucket along the bottom edge to collect clean water drops and avoid
// pollutants before the countdown runs out.
package catch

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dropcatch/internal/audio/cue"
	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/locale"
	"github.com/vovakirdan/dropcatch/internal/sched"
)

// ScoreStore persists the score of the last finished round.
type ScoreStore interface {
	PrevScore() (int, error)
	SetPrevScore(score int) error
}

// Sounder plays audio cues. A Sounder that also has SetMuted(bool) and
// Muted() bool is kept in step with the game's mute toggle, and a game
// starts muted when its Sounder already is.
type Sounder interface {
	Play(c cue.Cue)
}

// Options are the collaborators of a Game. Everything but Config may be
// left zero.
type Options struct {
	Config     config.CatchConfig
	Profile    config.ProfileConfig
	Difficulty config.DifficultyPreset
	Store      ScoreStore
	Sound      Sounder
	Logger     *log.Logger
}

// Game ties the round, presentation timers and collaborators together.
// All methods must be called from one goroutine.
type Game struct {
	cfg        config.CatchConfig
	profile    config.ProfileConfig
	difficulty config.DifficultyPreset
	store      ScoreStore
	sound      Sounder
	logger     *log.Logger

	rc       core.RuntimeConfig
	text     locale.Text
	frame    time.Duration
	sched    *sched.Scheduler
	round    *Round
	feedback *Feedback
	confetti *Confetti

	prev   int // previous score shown to the player
	final  int
	paused bool
	muted  bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyMedium
	}
	profile := opts.Profile
	if profile.CatcherHeight <= 0 {
		profile = opts.Config.Terminal
	}
	g := &Game{
		cfg:        opts.Config,
		profile:    profile,
		difficulty: difficulty,
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     logger,
	}
	if m, ok := opts.Sound.(interface{ Muted() bool }); ok {
		g.muted = m.Muted()
	}
	return g
}

// Reset discards any round in progress and returns to the start screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.round != nil {
		g.round.Stop()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	device := locale.DeviceDesktop
	if rc.Touch {
		device = locale.DeviceTouch
	}

	g.rc = rc
	g.text = locale.For(rc.Locale, device).WithDuration(durationSeconds(g.cfg.Round.Duration))
	g.frame = time.Second / time.Duration(rc.TickRate)
	g.sched = sched.New()
	g.feedback = NewFeedback(g.sched, g.cfg.Feedback.Duration)
	g.confetti = NewConfetti(g.sched, rc.Seed+1)
	g.round = NewRound(
		g.sched,
		g.cfg,
		g.derive(float64(rc.ScreenW), float64(rc.ScreenH)),
		NewSpawner(rc.Seed, g.cfg.Spawn.HarmfulChance),
		g.frame,
		Hooks{OnEvent: g.onEvent, OnEnd: g.onEnd},
	)
	g.paused = false
	g.final = 0
	g.prev = g.readPrev()
}

func (g *Game) derive(w, h float64) Geometry {
	return Derive(Viewport{W: w, H: h}, g.cfg, g.profile)
}

// Resize re-derives the geometry for a new viewport.
func (g *Game) Resize(w, h int) {
	g.rc.ScreenW = w
	g.rc.ScreenH = h
	g.round.Resize(g.derive(float64(w), float64(h)))
}

// Step applies the frame's input in arrival order, then advances the
// scheduler by one frame. Nothing advances while paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events() {
		g.handle(ev)
	}
	if !g.paused {
		g.sched.Advance(g.frame)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handle(ev core.InputEvent) {
	running := g.round.Phase() == PhaseRunning

	switch ev.Action {
	case core.ActionConfirm:
		if !running {
			g.Start()
		}
		return
	case core.ActionPause:
		if running {
			g.paused = !g.paused
		}
		return
	case core.ActionMute:
		g.SetMuted(!g.muted)
		return
	case core.ActionBack:
		if g.round.Phase() == PhaseEnded {
			g.confetti.Stop()
			g.round.Idle()
		}
		return
	}

	if !g.paused {
		g.round.Input(ev)
	}
}

// Start begins a round. It is the same for the first round and a restart.
func (g *Game) Start() {
	g.play(cue.Button)
	g.paused = false
	g.feedback.Reset()
	g.confetti.Stop()
	g.prev = g.readPrev()
	g.round.Start()
	g.logger.Info("round started", "difficulty", g.difficulty, "seed", g.rc.Seed)
}

func (g *Game) onEvent(ev Event) {
	switch ev.Kind {
	case EventCollected:
		g.feedback.Show(g.text.Good, ev.Kind)
		g.play(cue.Collect)
	case EventPollutant:
		g.feedback.Show(g.text.Bad, ev.Kind)
		g.play(cue.Miss)
	case EventMissed:
		g.feedback.Show(g.text.Miss, ev.Kind)
		g.play(cue.Miss)
	case EventMilestone:
		g.feedback.Show(g.text.Milestone(ev.Threshold), ev.Kind)
		g.play(cue.Milestone)
	}
}

func (g *Game) onEnd(final int) {
	g.final = final
	g.prev = g.readPrev()
	g.writePrev(final)
	g.feedback.Reset()
	g.confetti.Launch(g.round.Geometry().Viewport, g.cfg.Confetti.Count, g.cfg.Confetti.Duration, g.frame)
	g.play(cue.Win)
	g.logger.Info("round ended", "score", final, "previous", g.prev)
}

func (g *Game) readPrev() int {
	if g.store == nil {
		return 0
	}
	score, err := g.store.PrevScore()
	if err != nil {
		g.logger.Warn("failed to read previous score", "err", err)
		return 0
	}
	return score
}

func (g *Game) writePrev(score int) {
	if g.store == nil {
		return
	}
	if err := g.store.SetPrevScore(score); err != nil {
		g.logger.Warn("failed to save score", "score", score, "err", err)
	}
}

func (g *Game) play(c cue.Cue) {
	if g.sound != nil && !g.muted {
		g.sound.Play(c)
	}
}

// SetMuted turns audio cues off or on. A Sounder that can mute itself is
// told as well so sounding cues are cut.
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
	if m, ok := g.sound.(interface{ SetMuted(bool) }); ok {
		m.SetMuted(muted)
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := g.round.state
	return core.GameState{
		Score:    st.Score,
		TimeLeft: st.TimeLeft,
		Running:  st.Phase == PhaseRunning,
		GameOver: st.Phase == PhaseEnded,
		Paused:   g.paused,
	}
}

// Text returns the display strings in use.
func (g *Game) Text() locale.Text {
	return g.text
}

// View is a render snapshot shared by every front end.
type View struct {
	Phase        Phase
	Score        int
	TimeLeft     int
	Final        int
	Prev         int
	Viewport     Viewport
	Catcher      core.Box
	Radius       float64
	Entities     []Entity
	Feedback     string
	FeedbackKind EventKind
	Confetti     []Particle
	ConfettiUnit float64
	Paused       bool
	Muted        bool
	Difficulty   config.DifficultyPreset
	Text         locale.Text
}

// View returns a snapshot of everything a front end draws.
func (g *Game) View() View {
	st := g.round.State()
	geom := g.round.Geometry()
	return View{
		Phase:        st.Phase,
		Score:        st.Score,
		TimeLeft:     st.TimeLeft,
		Final:        g.final,
		Prev:         g.prev,
		Viewport:     geom.Viewport,
		Catcher:      catcherBox(st.CatcherX, geom),
		Radius:       geom.Radius,
		Entities:     st.Entities,
		Feedback:     g.feedback.Text(),
		FeedbackKind: g.feedback.Kind(),
		Confetti:     g.confetti.Particles(),
		ConfettiUnit: g.confetti.Scale(),
		Paused:       g.paused,
		Muted:        g.muted,
		Difficulty:   g.difficulty,
		Text:         g.text,
	}
}
