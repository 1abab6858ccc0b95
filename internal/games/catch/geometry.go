package catch

import (
	"math"
	"time"

	"github.com/vovakirdan/dropcatch/internal/config"
)

// Viewport is the play area size in play-area units.
type Viewport struct {
	W, H float64
}

// Geometry holds every size and speed derived from the viewport.
// Components read the current Geometry instead of caching values.
type Geometry struct {
	Viewport

	CatcherW     float64
	CatcherH     float64
	CatcherY     float64 // top edge of the catcher
	CatcherSpeed float64 // shift per key event

	Radius    float64
	GoodSpeed float64 // beneficial fall per frame
	BadSpeed  float64 // harmful fall per frame

	SpawnInterval time.Duration
}

// Derive computes the geometry for a viewport. Non-positive or NaN
// dimensions are clamped to the configured minimum so that no speed or
// radius is ever zero.
func Derive(vp Viewport, cfg config.CatchConfig, profile config.ProfileConfig) Geometry {
	w := sane(vp.W, cfg.Viewport.MinWidth)
	h := sane(vp.H, cfg.Viewport.MinHeight)
	gc := cfg.Geometry

	return Geometry{
		Viewport:      Viewport{W: w, H: h},
		CatcherW:      w / gc.CatcherWidthDiv,
		CatcherH:      profile.CatcherHeight,
		CatcherY:      math.Max(0, h-profile.CatcherHeight-profile.BottomMargin),
		CatcherSpeed:  w / gc.CatcherSpeedDiv,
		Radius:        w / gc.RadiusDiv,
		GoodSpeed:     h / gc.GoodSpeedDiv * gc.SpeedScale,
		BadSpeed:      h / gc.BadSpeedDiv * gc.SpeedScale,
		SpawnInterval: cfg.Spawn.Interval,
	}
}

func sane(v, min float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < min {
		return min
	}
	return v
}

// FallSpeed returns the per-frame fall speed for a kind.
func (g Geometry) FallSpeed(k Kind) float64 {
	if k == Harmful {
		return g.BadSpeed
	}
	return g.GoodSpeed
}

// MaxCatcherX is the rightmost allowed catcher position.
func (g Geometry) MaxCatcherX() float64 {
	return math.Max(0, g.W-g.CatcherW)
}
