package core

// RuntimeConfig is handed to a game when it is (re)started.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Clock supplies millisecond timestamps for spawn timing.
	// When nil the game keeps its own clock and advances it one frame per tick.
	Clock Clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMillis returns the duration of one tick in milliseconds.
func (c RuntimeConfig) FrameMillis() uint64 {
	if c.TickRate <= 0 {
		return 1000 / 60
	}
	return uint64(1000 / c.TickRate)
}

// GameState is the platform's view of a running game.
type GameState struct {
	Score    int  // Obstacles cleared in the current run
	GameOver bool // The run was lost
	Won      bool // The run was won
	Paused   bool
}

// Ended reports whether the run reached a terminal state.
func (s GameState) Ended() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Edge-triggered events raised during this tick
}
