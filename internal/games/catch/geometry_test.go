package catch

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/dropcatch/internal/config"
)

func TestDeriveWindowCanvas(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	g := Derive(Viewport{W: 600, H: 500}, cfg, cfg.Window)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"catcher width", g.CatcherW, 120},
		{"catcher height", g.CatcherH, 32},
		{"catcher y", g.CatcherY, 500 - 32 - 8},
		{"catcher speed", g.CatcherSpeed, 600.0 / 32},
		{"radius", g.Radius, 600.0 / 22},
		{"good speed", g.GoodSpeed, 500.0 / 150},
		{"bad speed", g.BadSpeed, 500.0 / 130},
	}
	for _, tc := range tests {
		if math.Abs(tc.got-tc.want) > 1e-9 {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.want)
		}
	}
	if g.SpawnInterval != 1300*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 1300ms", g.SpawnInterval)
	}
}

func TestDeriveClampsMalformedViewport(t *testing.T) {
	cfg := config.DefaultCatchConfig()

	tests := []struct {
		name string
		vp   Viewport
	}{
		{"zero", Viewport{0, 0}},
		{"negative", Viewport{-80, -24}},
		{"nan", Viewport{math.NaN(), math.NaN()}},
		{"inf", Viewport{math.Inf(1), 24}},
		{"tiny", Viewport{3, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Derive(tc.vp, cfg, cfg.Terminal)
			if g.W < cfg.Viewport.MinWidth || g.H < cfg.Viewport.MinHeight {
				t.Errorf("viewport not clamped: %vx%v", g.W, g.H)
			}
			for name, v := range map[string]float64{
				"CatcherW": g.CatcherW, "CatcherSpeed": g.CatcherSpeed, "Radius": g.Radius,
				"GoodSpeed": g.GoodSpeed, "BadSpeed": g.BadSpeed,
			} {
				if !(v > 0) || math.IsInf(v, 0) {
					t.Errorf("%s = %v, expected a positive finite value", name, v)
				}
			}
		})
	}
}

func TestDeriveSpeedScale(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	base := Derive(Viewport{W: 80, H: 24}, cfg, cfg.Terminal)

	config.ApplyCatchPreset(&cfg, config.DifficultyHard)
	hard := Derive(Viewport{W: 80, H: 24}, cfg, cfg.Terminal)

	if hard.GoodSpeed <= base.GoodSpeed || hard.BadSpeed <= base.BadSpeed {
		t.Error("hard preset should increase fall speeds")
	}
	if hard.SpawnInterval >= base.SpawnInterval {
		t.Error("hard preset should spawn more often")
	}
	if hard.CatcherW != base.CatcherW {
		t.Error("preset should not change catcher width")
	}
}

func TestFallSpeed(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	g := Derive(Viewport{W: 600, H: 500}, cfg, cfg.Window)

	if g.FallSpeed(Beneficial) != g.GoodSpeed {
		t.Error("beneficial entities should fall at GoodSpeed")
	}
	if g.FallSpeed(Harmful) != g.BadSpeed {
		t.Error("harmful entities should fall at BadSpeed")
	}
	if g.BadSpeed <= g.GoodSpeed {
		t.Error("pollutants should fall faster than drops")
	}
}
