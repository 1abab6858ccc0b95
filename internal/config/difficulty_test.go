package config

import (
	"testing"
	"time"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyMedium, false},
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyCatchPreset(t *testing.T) {
	medium := DefaultCatchConfig()
	ApplyCatchPreset(&medium, DifficultyMedium)
	if medium.Geometry.SpeedScale != 1.0 || medium.Spawn.Interval != 1300*time.Millisecond {
		t.Errorf("medium should be identity, got scale %v interval %v", medium.Geometry.SpeedScale, medium.Spawn.Interval)
	}

	hard := DefaultCatchConfig()
	ApplyCatchPreset(&hard, DifficultyHard)
	if hard.Geometry.SpeedScale <= 1.0 {
		t.Errorf("hard should speed up falls, scale = %v", hard.Geometry.SpeedScale)
	}
	if hard.Spawn.Interval != 1040*time.Millisecond {
		t.Errorf("hard spawn interval = %v, expected 1040ms", hard.Spawn.Interval)
	}

	easy := DefaultCatchConfig()
	ApplyCatchPreset(&easy, DifficultyEasy)
	if easy.Geometry.SpeedScale >= 1.0 || easy.Spawn.Interval <= 1300*time.Millisecond {
		t.Errorf("easy should slow the game, got scale %v interval %v", easy.Geometry.SpeedScale, easy.Spawn.Interval)
	}
}
