package crossword

// Timer is the play clock.
type Timer struct {
	ElapsedSeconds int
	IsRunning      bool
}

// Paused reports whether the clock has run and is now stopped.
func (t Timer) Paused() bool {
	return !t.IsRunning && t.ElapsedSeconds > 0
}

// State is the full crossword game state. Values are never mutated in place;
// Reduce returns a new State.
type State struct {
	Puzzle    Puzzle
	Cells     Grid
	Selected  Position
	Direction Direction
	Timer     Timer

	IsComplete                   bool
	CompletionDismissed          bool
	IsRevealed                   bool
	IncorrectCompletionDismissed bool
}

// NewState builds the initial state: cursor on the first white cell, across.
func NewState(p Puzzle) State {
	cells := BuildGrid(p)
	return State{
		Puzzle:    p,
		Cells:     cells,
		Selected:  cells.FirstNonBlackCell(),
		Direction: Across,
	}
}

// Phase is a tagged view over the state flags.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseComplete
	PhaseCompleteDismissed
	PhaseRevealed
)

func (p Phase) String() string {
	switch p {
	case PhaseComplete:
		return "complete"
	case PhaseCompleteDismissed:
		return "complete (dismissed)"
	case PhaseRevealed:
		return "revealed"
	default:
		return "playing"
	}
}

// Phase derives the play phase. Revealed absorbs the others.
func (s State) Phase() Phase {
	switch {
	case s.IsRevealed:
		return PhaseRevealed
	case s.IsComplete && s.CompletionDismissed:
		return PhaseCompleteDismissed
	case s.IsComplete:
		return PhaseComplete
	default:
		return PhasePlaying
	}
}

// ShowCompletion reports whether the solved prompt should be shown.
func (s State) ShowCompletion() bool {
	return s.IsComplete && !s.CompletionDismissed
}

// ShowIncorrectPrompt reports whether the grid is full but wrong and the
// player has not dismissed the prompt.
func (s State) ShowIncorrectPrompt() bool {
	return !s.IsComplete && !s.IncorrectCompletionDismissed && s.Cells.IsFilled()
}

// SelectedCell returns the cell under the cursor.
func (s State) SelectedCell() (CellState, bool) {
	return s.Cells.At(s.Selected)
}

// ActiveClue returns the clue under the cursor in the current direction.
func (s State) ActiveClue() (Clue, bool) {
	cell, ok := s.SelectedCell()
	if !ok || cell.IsBlack {
		return Clue{}, false
	}
	num := cell.Clues.Get(s.Direction)
	if num == 0 {
		return Clue{}, false
	}
	return s.Puzzle.Clue(num, s.Direction)
}

// ActiveWord returns the positions of the word under the cursor.
func (s State) ActiveWord() []Position {
	return s.Cells.WordCells(s.Selected, s.Direction)
}
