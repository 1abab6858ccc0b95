package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCatchConfig()) {
		t.Errorf("embedded YAML drifted from DefaultCatchConfig():\n got %+v\nwant %+v", cfg, DefaultCatchConfig())
	}
}

func TestLoadCatchFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Round.Duration != 30*time.Second {
		t.Errorf("Round.Duration = %v, expected 30s", cfg.Round.Duration)
	}
	if cfg.Spawn.Interval != 1300*time.Millisecond {
		t.Errorf("Spawn.Interval = %v, expected 1300ms", cfg.Spawn.Interval)
	}
}

func TestLoadCatchPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "round:\n  duration: 45s\nspawn:\n  harmful_chance: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Round.Duration != 45*time.Second {
		t.Errorf("Round.Duration = %v, expected 45s", cfg.Round.Duration)
	}
	if cfg.Spawn.HarmfulChance != 0.5 {
		t.Errorf("HarmfulChance = %v, expected 0.5", cfg.Spawn.HarmfulChance)
	}
	// Untouched keys keep their defaults
	if cfg.Spawn.Interval != 1300*time.Millisecond {
		t.Errorf("Spawn.Interval = %v, expected default 1300ms", cfg.Spawn.Interval)
	}
	if !reflect.DeepEqual(cfg.Round.Milestones, []int{5, 10, 15, 20}) {
		t.Errorf("Milestones = %v, expected defaults", cfg.Round.Milestones)
	}
}

func TestLoadCatchUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".dropcatch", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catch.yaml"), []byte("round:\n  milestones: [3, 6]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Round.Milestones, []int{3, 6}) {
		t.Errorf("Milestones = %v, expected [3 6]", cfg.Round.Milestones)
	}
}

func TestLoadCatchErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCatch(bad)
	if err == nil || !strings.Contains(err.Error(), "spawn.interval") {
		t.Errorf("expected spawn.interval validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatchConfig)
		substr string
	}{
		{"short round", func(c *CatchConfig) { c.Round.Duration = 0 }, "round.duration"},
		{"milestones not ascending", func(c *CatchConfig) { c.Round.Milestones = []int{5, 5} }, "milestones"},
		{"harmful chance", func(c *CatchConfig) { c.Spawn.HarmfulChance = 1.5 }, "harmful_chance"},
		{"zero divisor", func(c *CatchConfig) { c.Geometry.RadiusDiv = 0 }, "geometry.radius_div"},
		{"zero catcher height", func(c *CatchConfig) { c.Window.CatcherHeight = 0 }, "catcher_height"},
		{"feedback", func(c *CatchConfig) { c.Feedback.Duration = 0 }, "feedback.duration"},
	}

	if err := DefaultCatchConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.substr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultCatchConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "harmful_chance: 0.22") {
		t.Errorf("marshalled YAML missing harmful_chance:\n%s", data)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if cfg.Spawn.Interval != 1300*time.Millisecond {
		t.Errorf("Spawn.Interval = %v after round trip", cfg.Spawn.Interval)
	}
}
