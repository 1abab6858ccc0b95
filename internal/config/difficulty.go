package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Scaling is how a preset changes fall speeds and spawn frequency.
type Scaling struct {
	Speed float64 // multiplier on both fall speeds
	Spawn float64 // multiplier on the spawn interval
}

// ScalingForPreset returns the scaling for a difficulty preset.
// Unknown presets behave like medium.
func ScalingForPreset(preset DifficultyPreset) Scaling {
	switch preset {
	case DifficultyEasy:
		return Scaling{Speed: 0.8, Spawn: 1.25}
	case DifficultyHard:
		return Scaling{Speed: 1.25, Spawn: 0.8}
	default:
		return Scaling{Speed: 1.0, Spawn: 1.0}
	}
}

// ParsePreset validates a preset name from the command line.
// The empty string selects medium.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", name)
	}
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	s := ScalingForPreset(preset)
	cfg.Geometry.SpeedScale *= s.Speed
	cfg.Spawn.Interval = time.Duration(float64(cfg.Spawn.Interval) * s.Spawn)
}
