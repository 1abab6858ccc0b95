package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dropcatch/internal/audio/cue"
)

// Player mixes cues into the system speaker. Playing a cue that is already
// sounding restarts it. A nil *Player is silent, so callers never need to
// check whether audio is available.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	playing map[cue.Cue]*beep.Ctrl
	muted   bool
	lock    func()
	unlock  func()
}

// Open initializes the speaker and starts the mixer.
func Open() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	p := newPlayer(SampleRate, speaker.Lock, speaker.Unlock)
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(rate beep.SampleRate, lock, unlock func()) *Player {
	return &Player{
		rate:    rate,
		mixer:   &beep.Mixer{},
		playing: make(map[cue.Cue]*beep.Ctrl),
		lock:    lock,
		unlock:  unlock,
	}
}

// Play starts a cue from the beginning.
func (p *Player) Play(c cue.Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}

	ctrl := &beep.Ctrl{Streamer: Stream(c, p.rate)}

	p.lock()
	if prev, ok := p.playing[c]; ok {
		prev.Streamer = nil
	}
	p.mixer.Add(ctrl)
	p.unlock()

	p.playing[c] = ctrl
}

// SetMuted silences or re-enables playback. Muting cuts sounding cues.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if muted {
		p.stopAll()
	}
}

// Muted reports whether playback is silenced.
func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops all cues.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopAll()
}

func (p *Player) stopAll() {
	p.lock()
	for c, ctrl := range p.playing {
		ctrl.Streamer = nil
		delete(p.playing, c)
	}
	p.mixer.Clear()
	p.unlock()
}
