package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to the viewport and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Viewport width in play-area units
	ScreenH  int    // Viewport height in play-area units
	TickRate int    // Frames per second (default 60)
	Seed     int64  // RNG seed for deterministic spawning
	Locale   string // BCP-47 language tag for display text
	Touch    bool   // Touch device: selects touch instructions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Locale:   "en",
	}
}

// GameState is the snapshot a platform needs after every tick.
type GameState struct {
	Score    int  // Current score
	TimeLeft int  // Seconds remaining in the round
	Running  bool // Round in progress
	GameOver bool // Round ended, end screen visible
	Paused   bool // Round paused
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
