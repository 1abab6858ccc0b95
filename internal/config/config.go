// Package config provides YAML-based configuration loading and difficulty
// presets for the catcher game.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// CatchConfig contains all configuration for the catcher game.
type CatchConfig struct {
	Round    RoundConfig    `yaml:"round"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Geometry GeometryConfig `yaml:"geometry"`
	Viewport ViewportConfig `yaml:"viewport"`
	Terminal ProfileConfig  `yaml:"terminal"`
	Window   ProfileConfig  `yaml:"window"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Confetti ConfettiConfig `yaml:"confetti"`
}

// RoundConfig defines round length and milestone thresholds.
type RoundConfig struct {
	Duration   time.Duration `yaml:"duration"`
	Milestones []int         `yaml:"milestones"` // ascending score thresholds
}

// SpawnConfig defines how falling objects are created.
type SpawnConfig struct {
	Interval      time.Duration `yaml:"interval"`
	HarmfulChance float64       `yaml:"harmful_chance"`
}

// GeometryConfig holds the viewport divisors every size and speed is
// derived from.
type GeometryConfig struct {
	CatcherWidthDiv float64 `yaml:"catcher_width_div"` // catcher width = W / div
	CatcherSpeedDiv float64 `yaml:"catcher_speed_div"` // key nudge = W / div
	RadiusDiv       float64 `yaml:"radius_div"`        // entity radius = W / div
	GoodSpeedDiv    float64 `yaml:"good_speed_div"`    // beneficial fall per frame = H / div
	BadSpeedDiv     float64 `yaml:"bad_speed_div"`     // harmful fall per frame = H / div
	SpeedScale      float64 `yaml:"speed_scale"`       // multiplier applied to both fall speeds
}

// ViewportConfig bounds malformed viewports.
type ViewportConfig struct {
	MinWidth  float64 `yaml:"min_width"`
	MinHeight float64 `yaml:"min_height"`
}

// ProfileConfig holds the display-dependent constants that are not derived
// from the viewport.
type ProfileConfig struct {
	CatcherHeight float64 `yaml:"catcher_height"`
	BottomMargin  float64 `yaml:"bottom_margin"`
}

// FeedbackConfig controls transient feedback text.
type FeedbackConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// ConfettiConfig controls the end-of-round particle sequence.
type ConfettiConfig struct {
	Count    int           `yaml:"count"`
	Duration time.Duration `yaml:"duration"`
}

// Validate reports configuration values the game cannot run with.
func (c CatchConfig) Validate() error {
	var errs []error

	if c.Round.Duration < time.Second {
		errs = append(errs, fmt.Errorf("round.duration must be at least 1s, got %v", c.Round.Duration))
	}
	for i := 1; i < len(c.Round.Milestones); i++ {
		if c.Round.Milestones[i] <= c.Round.Milestones[i-1] {
			errs = append(errs, fmt.Errorf("round.milestones must be strictly ascending at index %d", i))
			break
		}
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval must be positive, got %v", c.Spawn.Interval))
	}
	if c.Spawn.HarmfulChance < 0 || c.Spawn.HarmfulChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.harmful_chance must be in [0, 1], got %v", c.Spawn.HarmfulChance))
	}

	divs := map[string]float64{
		"geometry.catcher_width_div": c.Geometry.CatcherWidthDiv,
		"geometry.catcher_speed_div": c.Geometry.CatcherSpeedDiv,
		"geometry.radius_div":        c.Geometry.RadiusDiv,
		"geometry.good_speed_div":    c.Geometry.GoodSpeedDiv,
		"geometry.bad_speed_div":     c.Geometry.BadSpeedDiv,
		"geometry.speed_scale":       c.Geometry.SpeedScale,
		"viewport.min_width":         c.Viewport.MinWidth,
		"viewport.min_height":        c.Viewport.MinHeight,
	}
	for _, name := range sortedKeys(divs) {
		if divs[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, divs[name]))
		}
	}

	if c.Terminal.CatcherHeight <= 0 || c.Window.CatcherHeight <= 0 {
		errs = append(errs, errors.New("catcher_height must be positive in every profile"))
	}
	if c.Feedback.Duration <= 0 {
		errs = append(errs, fmt.Errorf("feedback.duration must be positive, got %v", c.Feedback.Duration))
	}
	if c.Confetti.Count < 0 || c.Confetti.Duration < 0 {
		errs = append(errs, errors.New("confetti count and duration must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
