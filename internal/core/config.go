package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Input/render frames per second
	Seed     int64 // RNG seed for shuffles (0 = time based, chosen by the platform)

	// Player namespaces persisted state, e.g. the SSH user name.
	// Empty means the local player.
	Player string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// Outcome describes how a finished game ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeSolved   Outcome = "solved"
	OutcomeRevealed Outcome = "revealed"
	OutcomeWon      Outcome = "won"
	OutcomeLost     Outcome = "lost"
)

// Outcomes lists every terminal outcome.
var Outcomes = []Outcome{OutcomeSolved, OutcomeRevealed, OutcomeWon, OutcomeLost}

// Success reports whether the outcome counts as a win.
func (o Outcome) Success() bool {
	return o == OutcomeSolved || o == OutcomeWon
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	PuzzleID string  // Puzzle being played
	Score    int     // Elapsed seconds (crossword) or mistakes made (connections); lower is better
	GameOver bool    // Whether the game has reached a terminal outcome
	Paused   bool    // Whether the game clock is paused
	Outcome  Outcome // Set once GameOver is true
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
