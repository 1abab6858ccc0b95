package catch

import (
	"testing"

	"github.com/vovakirdan/dropcatch/internal/config"
)

func TestSpawnBounds(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	g := Derive(Viewport{W: 320, H: 400}, cfg, cfg.Window)
	s := NewSpawner(42, cfg.Spawn.HarmfulChance)

	harmful := 0
	const n = 5000
	for i := 0; i < n; i++ {
		e := s.Spawn(g)
		if e.X < g.Radius || e.X > g.W-g.Radius {
			t.Fatalf("spawn x %v outside [%v, %v]", e.X, g.Radius, g.W-g.Radius)
		}
		if e.Y != -g.Radius {
			t.Fatalf("spawn y = %v, expected %v", e.Y, -g.Radius)
		}
		if e.Kind == Harmful {
			harmful++
		}
	}

	ratio := float64(harmful) / n
	if ratio < 0.18 || ratio > 0.26 {
		t.Errorf("harmful ratio = %.3f, expected about 0.22", ratio)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	g := Derive(Viewport{W: 80, H: 24}, cfg, cfg.Terminal)

	a := NewSpawner(7, cfg.Spawn.HarmfulChance)
	b := NewSpawner(7, cfg.Spawn.HarmfulChance)
	for i := 0; i < 50; i++ {
		if ea, eb := a.Spawn(g), b.Spawn(g); ea != eb {
			t.Fatalf("spawn %d differs for the same seed: %+v vs %+v", i, ea, eb)
		}
	}
}

func TestSpawnChanceExtremes(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	g := Derive(Viewport{W: 80, H: 24}, cfg, cfg.Terminal)

	never := NewSpawner(1, 0)
	always := NewSpawner(1, 1)
	for i := 0; i < 100; i++ {
		if never.Spawn(g).Kind != Beneficial {
			t.Fatal("chance 0 produced a pollutant")
		}
		if always.Spawn(g).Kind != Harmful {
			t.Fatal("chance 1 produced a drop")
		}
	}
}
