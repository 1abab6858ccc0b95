// Package audio synthesizes and plays the game's sound cues with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/dropcatch/internal/audio/cue"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator with a linear frequency glide and an
// attack/release envelope.
type tone struct {
	rate     beep.SampleRate
	from, to float64 // Hz
	wave     Wave
	total    int
	attack   int
	release  int
	pos      int
	phase    float64
}

// Tone returns a streamer that plays for d, gliding from one frequency to
// another.
func Tone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &tone{
		rate:    rate,
		from:    from,
		to:      to,
		wave:    wave,
		total:   total,
		attack:  min(rate.N(5*time.Millisecond), total/4),
		release: min(rate.N(40*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= t.envelope()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if remaining := t.total - t.pos; t.release > 0 && remaining < t.release {
		return float64(remaining) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func arpeggio(notes []float64, step time.Duration, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = Tone(f, f, step, WaveSine, rate)
	}
	return beep.Seq(parts...)
}

// Stream builds a fresh streamer for a cue.
func Stream(c cue.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case cue.Collect:
		return volume(beep.Mix(
			Tone(880, 1320, 120*time.Millisecond, WaveSine, rate),
			volume(Tone(1760, 2640, 120*time.Millisecond, WaveSine, rate), 0.3),
		), 0.4)
	case cue.Miss:
		return volume(Tone(220, 110, 220*time.Millisecond, WaveSaw, rate), 0.25)
	case cue.Milestone:
		return volume(arpeggio([]float64{523.25, 659.25, 783.99}, 90*time.Millisecond, rate), 0.4)
	case cue.Win:
		return volume(arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 160*time.Millisecond, rate), 0.45)
	case cue.Button:
		return volume(Tone(660, 660, 40*time.Millisecond, WaveSquare, rate), 0.15)
	default:
		return beep.Silence(0)
	}
}
