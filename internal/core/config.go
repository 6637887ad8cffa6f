package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Rows available to the game
	TickRate int   // Steps per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the config used when nothing else is known:
// an 80x24 terminal stepping at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary of a game the platform cares about.
type GameState struct {
	Score    int
	GameOver bool // Saving a score happens once per transition into this
	Paused   bool
}

// StepResult is returned by every Game.Step.
type StepResult struct {
	State GameState
}
