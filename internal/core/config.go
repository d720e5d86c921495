package core

// RuntimeConfig describes the surface a game is attached to: the terminal
// size, how often it is stepped, and the seed for its tile spawner.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Steps per second
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig returns the settings for a plain 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is what a front end needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Step call.
type StepResult struct {
	State GameState
	Moved bool // The board changed during this step
}
