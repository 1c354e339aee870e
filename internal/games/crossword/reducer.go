package crossword

import (
	"strings"
	"unicode/utf8"
)

// Reduce applies one action and returns the next state. Invalid actions
// return s unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	if s.IsRevealed && a.Type().Locked() {
		return s
	}

	switch act := a.(type) {
	case SelectCell:
		return selectCell(s, act.Position)

	case ToggleDirection:
		cell, ok := s.SelectedCell()
		if !ok || !cell.Clues.Has(s.Direction.Other()) {
			return s
		}
		s.Direction = s.Direction.Other()
		return s

	case SetDirection:
		s.Direction = act.Direction
		return s

	case InputLetter:
		return inputLetter(s, act.Letter)

	case DeleteLetter:
		return deleteLetter(s)

	case MoveCursor:
		return moveCursor(s, act.Move)

	case NextClue:
		return stepClue(s, false)

	case PrevClue:
		return stepClue(s, true)

	case SelectClue:
		pos, ok := s.Cells.FirstCellOfClue(act.Number, act.Direction)
		if !ok {
			return s
		}
		s.Selected = pos
		s.Direction = act.Direction
		s.Timer.IsRunning = true
		return s

	case CheckCell:
		return check(s, []Position{s.Selected})

	case CheckWord:
		return check(s, s.ActiveWord())

	case CheckPuzzle:
		return check(s, s.Cells.whitePositions())

	case RevealCell:
		if !s.Cells.White(s.Selected) {
			return s
		}
		return checkCompletion(reveal(s, []Position{s.Selected}))

	case RevealWord:
		return checkCompletion(reveal(s, s.ActiveWord()))

	case RevealPuzzle:
		s = reveal(s, s.Cells.whitePositions())
		s.IsRevealed = true
		s.Timer.IsRunning = false
		return checkCompletion(s)

	case ClearWord:
		s.Cells = blank(s.Cells, s.ActiveWord())
		return s

	case ClearPuzzle:
		s.Cells = blank(s.Cells, s.Cells.whitePositions())
		s.IsComplete = false
		s.CompletionDismissed = false
		return s

	case TickTimer:
		if !s.Timer.IsRunning {
			return s
		}
		s.Timer.ElapsedSeconds++
		return s

	case ToggleTimer:
		s.Timer.IsRunning = !s.Timer.IsRunning
		return s

	case DismissCompletion:
		s.CompletionDismissed = true
		return s

	case DismissIncorrectCompletion:
		s.IncorrectCompletionDismissed = true
		return s

	case UnlockPuzzle:
		s.IsRevealed = false
		return s

	case RestoreState:
		return restore(s, act.Saved)
	}

	return s
}

func selectCell(s State, p Position) State {
	cell, ok := s.Cells.At(p)
	if !ok || cell.IsBlack {
		return s
	}
	if p == s.Selected {
		if cell.Clues.Has(s.Direction.Other()) {
			s.Direction = s.Direction.Other()
		}
	} else {
		s.Direction = s.Cells.EnsureDirection(p, s.Direction)
	}
	s.Selected = p
	s.Timer.IsRunning = true
	return s
}

func inputLetter(s State, letter string) State {
	if !s.Cells.White(s.Selected) {
		return s
	}
	r, size := utf8.DecodeRuneInString(letter)
	if size == 0 {
		return s
	}
	value := strings.ToUpper(string(r))

	s.Cells = s.Cells.update([]Position{s.Selected}, func(c CellState) CellState {
		c.Value = value
		c.Status = StatusDefault
		return c
	})
	s.Selected = s.Cells.NextInputPosition(s.Selected, s.Direction)
	s.Timer.IsRunning = true
	return checkCompletion(s)
}

func deleteLetter(s State) State {
	cell, ok := s.SelectedCell()
	if !ok || cell.IsBlack {
		return s
	}
	if cell.Value != "" {
		s.Cells = blank(s.Cells, []Position{s.Selected})
		return s
	}

	prev := s.Cells.PrevInputPosition(s.Selected, s.Direction)
	if prev == s.Selected {
		return s
	}
	s.Cells = blank(s.Cells, []Position{prev})
	s.Selected = prev
	return s
}

func moveCursor(s State, m Move) State {
	axis := m.Axis()
	if axis != s.Direction {
		if cell, ok := s.SelectedCell(); ok && cell.Clues.Has(axis) {
			s.Direction = axis
			return s
		}
	}
	s.Selected = s.Cells.MovedPosition(s.Selected, m)
	s.Direction = s.Cells.EnsureDirection(s.Selected, s.Direction)
	return s
}

func stepClue(s State, reverse bool) State {
	cell, ok := s.SelectedCell()
	if !ok {
		return s
	}
	num := cell.Clues.Get(s.Direction)
	if num == 0 {
		return s
	}
	next, ok := s.Cells.NextClue(num, s.Direction, reverse)
	if !ok {
		return s
	}
	pos, ok := s.Cells.FirstCellOfClue(next.Number, next.Direction)
	if !ok {
		return s
	}
	s.Selected = pos
	s.Direction = next.Direction
	return s
}

// check marks filled white cells correct or incorrect. Empty cells are left alone.
func check(s State, ps []Position) State {
	var targets []Position
	for _, p := range ps {
		if c, ok := s.Cells.At(p); ok && !c.IsBlack && c.Value != "" {
			targets = append(targets, p)
		}
	}
	s.Cells = s.Cells.update(targets, func(c CellState) CellState {
		if c.Correct() {
			c.Status = StatusCorrect
		} else {
			c.Status = StatusIncorrect
		}
		return c
	})
	return s
}

func reveal(s State, ps []Position) State {
	s.Cells = s.Cells.update(ps, func(c CellState) CellState {
		if c.IsBlack {
			return c
		}
		c.Value = c.Solution
		c.Status = StatusRevealed
		return c
	})
	return s
}

func blank(g Grid, ps []Position) Grid {
	return g.update(ps, func(c CellState) CellState {
		if c.IsBlack {
			return c
		}
		c.Value = ""
		c.Status = StatusDefault
		return c
	})
}

// checkCompletion latches IsComplete and stops the clock once the grid is
// solved. It never clears IsComplete.
func checkCompletion(s State) State {
	if !s.Cells.IsComplete() {
		return s
	}
	s.IsComplete = true
	s.Timer.IsRunning = false
	return s
}

func restore(s State, saved SavedState) State {
	var ps []Position
	byPos := make(map[Position]CellValue, len(saved.CellValues))
	for _, cv := range saved.CellValues {
		p := Position{Row: cv.Row, Col: cv.Col}
		if !s.Cells.White(p) {
			continue
		}
		ps = append(ps, p)
		byPos[p] = cv
	}
	s.Cells = s.Cells.update(ps, func(c CellState) CellState {
		cv := byPos[Position{Row: c.Row, Col: c.Col}]
		c.Value = strings.ToUpper(cv.Value)
		c.Status = cv.Status
		if c.Status == "" {
			c.Status = StatusDefault
		}
		return c
	})

	if s.Cells.White(saved.SelectedPosition) {
		s.Selected = saved.SelectedPosition
	}
	s.Direction = saved.Direction
	s.Timer = Timer{ElapsedSeconds: max(saved.ElapsedSeconds, 0)}
	s.IsComplete = saved.IsComplete
	s.IsRevealed = saved.IsRevealed
	return s
}
