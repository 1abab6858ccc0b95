package catch

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/sched"
)

// confettiRefHeight is the canvas height the particle motion was tuned for.
// Motion is scaled by viewport height relative to it.
const confettiRefHeight = 500.0

var confettiColors = []core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Particle is one piece of confetti. R and Tilt are in reference units;
// multiply by Scale for play-area units.
type Particle struct {
	X, Y      float64
	R         float64
	D         float64
	Tilt      float64
	TiltAngle float64
	TiltStep  float64
	Color     core.Color
}

// Confetti is the end-of-round particle sequence. It animates on a frame
// task and tears itself down after its duration.
type Confetti struct {
	sched     *sched.Scheduler
	rng       *rand.Rand
	particles []Particle
	angle     float64
	scale     float64
	tasks     sched.Group
}

// NewConfetti creates an idle confetti sequence.
func NewConfetti(s *sched.Scheduler, seed int64) *Confetti {
	return &Confetti{
		sched: s,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Launch starts a new sequence over the viewport, replacing any running one.
func (c *Confetti) Launch(vp Viewport, count int, duration, frame time.Duration) {
	c.Stop()
	if count <= 0 || duration <= 0 {
		return
	}

	c.scale = vp.H / confettiRefHeight
	c.angle = 0
	c.particles = make([]Particle, count)
	for i := range c.particles {
		c.particles[i] = Particle{
			X:        c.rng.Float64() * vp.W,
			Y:        c.rng.Float64() * -vp.H,
			R:        c.rng.Float64()*6 + 4,
			D:        c.rng.Float64() * confettiRefHeight,
			Tilt:     c.rng.Float64()*10 - 10,
			TiltStep: c.rng.Float64()*0.07 + 0.05,
			Color:    confettiColors[c.rng.Intn(len(confettiColors))],
		}
	}

	c.tasks.Add(c.sched.Every("confetti", frame, priorityFrame, c.animate))
	c.tasks.Add(c.sched.After("confetti-teardown", duration, c.Stop))
}

func (c *Confetti) animate() {
	c.angle += 0.01
	for i := range c.particles {
		p := &c.particles[i]
		p.TiltAngle += p.TiltStep
		p.Y += (math.Cos(c.angle+p.D) + 1 + p.R/2) * 0.9 * c.scale
		p.X += math.Sin(c.angle) * c.scale
		p.Tilt = math.Sin(p.TiltAngle-float64(i%3)) * 15
	}
}

// Stop tears the sequence down.
func (c *Confetti) Stop() {
	c.tasks.Stop()
	c.particles = nil
}

// Active reports whether confetti is on screen.
func (c *Confetti) Active() bool {
	return len(c.particles) > 0
}

// Particles returns the live particles. The slice is owned by Confetti.
func (c *Confetti) Particles() []Particle {
	return c.particles
}

// Scale converts reference units to play-area units.
func (c *Confetti) Scale() float64 {
	return c.scale
}
