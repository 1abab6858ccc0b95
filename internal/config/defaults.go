package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Round: RoundConfig{
			Duration:   30 * time.Second,
			Milestones: []int{5, 10, 15, 20},
		},
		Spawn: SpawnConfig{
			Interval:      1300 * time.Millisecond,
			HarmfulChance: 0.22,
		},
		Geometry: GeometryConfig{
			CatcherWidthDiv: 5,
			CatcherSpeedDiv: 32,
			RadiusDiv:       22,
			GoodSpeedDiv:    150,
			BadSpeedDiv:     130,
			SpeedScale:      1.0,
		},
		Viewport: ViewportConfig{
			MinWidth:  20,
			MinHeight: 10,
		},
		Terminal: ProfileConfig{
			CatcherHeight: 1,
			BottomMargin:  1,
		},
		Window: ProfileConfig{
			CatcherHeight: 32,
			BottomMargin:  8,
		},
		Feedback: FeedbackConfig{
			Duration: 900 * time.Millisecond,
		},
		Confetti: ConfettiConfig{
			Count:    80,
			Duration: 3 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
