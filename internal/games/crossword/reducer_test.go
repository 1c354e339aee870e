package crossword

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScenarioTypeAcrossLeavesDownAlone(t *testing.T) {
	s := NewState(catPuzzle())
	if s.Selected != pos(0, 1) || s.Direction != Across {
		t.Fatalf("initial cursor = %v %v, want (0,1) across", s.Selected, s.Direction)
	}

	s = typeWord(s, "cat")

	for i, want := range []string{"C", "A", "T"} {
		if got := s.Cells[0][1+i].Value; got != want {
			t.Errorf("(0,%d) = %q, want %q", 1+i, got, want)
		}
	}
	for r := 1; r < 3; r++ {
		if got := s.Cells[r][1].Value; got != "" {
			t.Errorf("(%d,1) = %q, column 1 must be untouched", r, got)
		}
	}
	if s.Selected != pos(0, 3) {
		t.Errorf("cursor = %v, want to stay at word end (0,3)", s.Selected)
	}
}

func TestScenarioCheckWordMarksWrongLetter(t *testing.T) {
	s := typeWord(NewState(catPuzzle()), "CAR")
	s = Reduce(s, CheckWord{})

	want := []CellStatus{StatusCorrect, StatusCorrect, StatusIncorrect}
	for i, w := range want {
		if got := s.Cells[0][1+i].Status; got != w {
			t.Errorf("(0,%d) status = %s, want %s", 1+i, got, w)
		}
	}
}

func TestSelectCell(t *testing.T) {
	t.Run("reselect flips axis", func(t *testing.T) {
		s := NewState(miniPuzzle())
		s = Reduce(s, SelectCell{Position: pos(0, 0)})
		if s.Direction != Down {
			t.Errorf("direction = %v, want down", s.Direction)
		}
		if !s.Timer.IsRunning {
			t.Error("selecting should start the timer")
		}
	})

	t.Run("reselect without other axis keeps", func(t *testing.T) {
		s := NewState(catPuzzle())
		s = Reduce(s, SelectCell{Position: pos(0, 3)})
		s = Reduce(s, SelectCell{Position: pos(0, 3)})
		if s.Direction != Across {
			t.Errorf("direction = %v, want across", s.Direction)
		}
	})

	t.Run("new cell adopts supported axis", func(t *testing.T) {
		s := NewState(catPuzzle())
		s.Direction = Down
		s = Reduce(s, SelectCell{Position: pos(0, 3)})
		if s.Selected != pos(0, 3) || s.Direction != Across {
			t.Errorf("got %v %v, want (0,3) across", s.Selected, s.Direction)
		}
	})

	t.Run("black and out of bounds ignored", func(t *testing.T) {
		s := NewState(catPuzzle())
		for _, p := range []Position{pos(0, 0), pos(-1, 2), pos(5, 5)} {
			if diff := cmp.Diff(s, Reduce(s, SelectCell{Position: p})); diff != "" {
				t.Errorf("SelectCell(%v) changed state:\n%s", p, diff)
			}
		}
	})
}

func TestToggleAndSetDirection(t *testing.T) {
	s := NewState(catPuzzle())
	s = Reduce(s, ToggleDirection{})
	if s.Direction != Down {
		t.Fatalf("toggle at intersection = %v, want down", s.Direction)
	}

	s = Reduce(s, SelectCell{Position: pos(0, 3)})
	before := s
	s = Reduce(s, ToggleDirection{})
	if diff := cmp.Diff(before, s); diff != "" {
		t.Errorf("toggle without perpendicular clue changed state:\n%s", diff)
	}

	s = Reduce(s, SetDirection{Direction: Down})
	if s.Direction != Down {
		t.Errorf("SetDirection = %v, want down", s.Direction)
	}
}

func TestInputLetter(t *testing.T) {
	s := NewState(miniPuzzle())

	s = Reduce(s, InputLetter{Letter: "xyz"})
	if got := s.Cells[0][0].Value; got != "X" {
		t.Errorf("value = %q, want X", got)
	}
	if s.Selected != pos(0, 1) {
		t.Errorf("cursor = %v, want advance to (0,1)", s.Selected)
	}

	// Typing over a checked cell resets its mark.
	s = Reduce(s, SelectCell{Position: pos(0, 0)})
	s = Reduce(s, SetDirection{Direction: Across})
	s = Reduce(s, CheckCell{})
	if s.Cells[0][0].Status != StatusIncorrect {
		t.Fatalf("status = %s, want incorrect", s.Cells[0][0].Status)
	}
	s = Reduce(s, InputLetter{Letter: "c"})
	if c := s.Cells[0][0]; c.Value != "C" || c.Status != StatusDefault {
		t.Errorf("retyped cell = %+v", c)
	}

	before := s
	if diff := cmp.Diff(before, Reduce(s, InputLetter{Letter: ""})); diff != "" {
		t.Errorf("empty letter changed state:\n%s", diff)
	}
}

func TestDeleteLetter(t *testing.T) {
	s := typeWord(NewState(miniPuzzle()), "CA")
	if s.Selected != pos(0, 2) {
		t.Fatalf("cursor = %v, want (0,2)", s.Selected)
	}

	// Current cell empty: step back and clear.
	s = Reduce(s, DeleteLetter{})
	if s.Selected != pos(0, 1) || s.Cells[0][1].Value != "" {
		t.Errorf("after delete: cursor %v, (0,1)=%q", s.Selected, s.Cells[0][1].Value)
	}

	// Current cell filled: clear in place.
	s = Reduce(s, SelectCell{Position: pos(0, 0)})
	s = Reduce(s, SetDirection{Direction: Across})
	s = Reduce(s, DeleteLetter{})
	if s.Selected != pos(0, 0) || s.Cells[0][0].Value != "" {
		t.Errorf("clear in place: cursor %v, (0,0)=%q", s.Selected, s.Cells[0][0].Value)
	}

	// Word start with nothing to clear: no-op.
	before := s
	if diff := cmp.Diff(before, Reduce(s, DeleteLetter{})); diff != "" {
		t.Errorf("delete at empty word start changed state:\n%s", diff)
	}
}

func TestMoveReorientsBeforeMoving(t *testing.T) {
	s := NewState(miniPuzzle())

	s = Reduce(s, MoveCursor{Move: MoveDown})
	if s.Selected != pos(0, 0) || s.Direction != Down {
		t.Fatalf("first press: %v %v, want stay at (0,0) and switch to down", s.Selected, s.Direction)
	}

	s = Reduce(s, MoveCursor{Move: MoveDown})
	if s.Selected != pos(1, 0) || s.Direction != Down {
		t.Errorf("second press: %v %v, want (1,0) down", s.Selected, s.Direction)
	}

	// A cell without the implied axis moves straight away.
	c := NewState(catPuzzle())
	c = Reduce(c, SelectCell{Position: pos(0, 3)})
	c = Reduce(c, MoveCursor{Move: MoveDown})
	if c.Selected != pos(1, 3) || c.Direction != Across {
		t.Errorf("cat move down: %v %v, want (1,3) across", c.Selected, c.Direction)
	}
}

func TestNextPrevClue(t *testing.T) {
	s := NewState(miniPuzzle())

	next := Reduce(s, NextClue{})
	if next.Selected != pos(1, 0) || next.Direction != Across {
		t.Errorf("NextClue = %v %v, want 5 across at (1,0)", next.Selected, next.Direction)
	}

	prev := Reduce(s, PrevClue{})
	if prev.Selected != pos(3, 4) || prev.Direction != Down {
		t.Errorf("PrevClue = %v %v, want 8 down at (3,4)", prev.Selected, prev.Direction)
	}

	// No clue in the current direction: unchanged.
	c := NewState(catPuzzle())
	c.Selected = pos(1, 3)
	if diff := cmp.Diff(c, Reduce(c, NextClue{})); diff != "" {
		t.Errorf("NextClue without a clue changed state:\n%s", diff)
	}
}

func TestSelectClue(t *testing.T) {
	s := Reduce(NewState(miniPuzzle()), SelectClue{Number: 4, Direction: Down})
	if s.Selected != pos(0, 3) || s.Direction != Down || !s.Timer.IsRunning {
		t.Errorf("SelectClue = %v %v running=%v", s.Selected, s.Direction, s.Timer.IsRunning)
	}

	before := NewState(miniPuzzle())
	if diff := cmp.Diff(before, Reduce(before, SelectClue{Number: 3, Direction: Across})); diff != "" {
		t.Errorf("unknown clue changed state:\n%s", diff)
	}
}

func TestCheckLeavesEmptyCellsAlone(t *testing.T) {
	s := typeWord(NewState(miniPuzzle()), "CX")
	s = Reduce(s, CheckPuzzle{})

	if got := s.Cells[0][0].Status; got != StatusCorrect {
		t.Errorf("(0,0) = %s, want correct", got)
	}
	if got := s.Cells[0][1].Status; got != StatusIncorrect {
		t.Errorf("(0,1) = %s, want incorrect", got)
	}
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Value == "" && c.Status != StatusDefault {
				t.Errorf("empty cell (%d,%d) marked %s", c.Row, c.Col, c.Status)
			}
		}
	}

	// Checking an empty cursor cell is a no-op.
	e := NewState(miniPuzzle())
	if diff := cmp.Diff(e, Reduce(e, CheckCell{})); diff != "" {
		t.Errorf("CheckCell on empty changed state:\n%s", diff)
	}
}

func TestRevealCellAndWord(t *testing.T) {
	s := NewState(miniPuzzle())
	s = Reduce(s, RevealCell{})
	if c := s.Cells[0][0]; c.Value != "C" || c.Status != StatusRevealed {
		t.Errorf("revealed cell = %+v", c)
	}

	s = Reduce(s, RevealWord{})
	for col, want := range "CARD" {
		if c := s.Cells[0][col]; c.Value != string(want) || c.Status != StatusRevealed {
			t.Errorf("(0,%d) = %+v", col, c)
		}
	}
	if s.IsComplete || s.IsRevealed {
		t.Error("partial reveal should neither complete nor lock")
	}
}

func TestRevealWordCanComplete(t *testing.T) {
	s := solveAll(NewState(miniPuzzle()))
	s.Cells = blank(s.Cells, []Position{pos(3, 4), pos(4, 4)})
	s = Reduce(s, SelectClue{Number: 8, Direction: Down})

	s = Reduce(s, RevealWord{})
	if !s.IsComplete || s.Timer.IsRunning {
		t.Errorf("complete=%v running=%v, want complete with stopped timer", s.IsComplete, s.Timer.IsRunning)
	}
	if s.IsRevealed {
		t.Error("word reveal must not lock the puzzle")
	}
}

func TestCompletionIsSticky(t *testing.T) {
	s := solveAll(NewState(miniPuzzle()))
	s.Cells = blank(s.Cells, []Position{pos(4, 4)})
	s = Reduce(s, SelectCell{Position: pos(4, 4)})
	s = Reduce(s, InputLetter{Letter: "o"})

	if !s.IsComplete {
		t.Fatal("typing the last letter should complete the puzzle")
	}
	if s.Timer.IsRunning {
		t.Error("completion should stop the timer")
	}

	actions := []Action{
		CheckCell{}, CheckWord{}, CheckPuzzle{},
		MoveCursor{Move: MoveUp}, NextClue{}, PrevClue{},
		SelectCell{Position: pos(1, 1)}, ToggleDirection{},
		InputLetter{Letter: "Z"}, DeleteLetter{}, ClearWord{},
		TickTimer{}, ToggleTimer{}, DismissCompletion{},
	}
	for _, a := range actions {
		s = Reduce(s, a)
		if !s.IsComplete {
			t.Fatalf("%s reset IsComplete", a.Type())
		}
	}

	s = Reduce(s, ClearPuzzle{})
	if s.IsComplete || s.CompletionDismissed {
		t.Error("ClearPuzzle should reset completion flags")
	}
	for _, p := range s.Cells.whitePositions() {
		if c := s.Cells[p.Row][p.Col]; c.Value != "" || c.Status != StatusDefault {
			t.Errorf("cell %v not cleared: %+v", p, c)
		}
	}
}

func TestRevealPuzzleLocks(t *testing.T) {
	s := Reduce(NewState(miniPuzzle()), SelectCell{Position: pos(1, 1)})
	s = Reduce(s, RevealPuzzle{})

	if !s.IsRevealed || !s.IsComplete || s.Timer.IsRunning {
		t.Fatalf("revealed=%v complete=%v running=%v", s.IsRevealed, s.IsComplete, s.Timer.IsRunning)
	}
	if s.Phase() != PhaseRevealed {
		t.Errorf("Phase = %v, want revealed", s.Phase())
	}

	locked := []Action{
		SelectCell{Position: pos(0, 0)}, ToggleDirection{}, SetDirection{Direction: Down},
		InputLetter{Letter: "Q"}, DeleteLetter{}, MoveCursor{Move: MoveLeft},
		NextClue{}, PrevClue{}, SelectClue{Number: 7, Direction: Across},
		CheckCell{}, CheckWord{}, CheckPuzzle{},
		RevealCell{}, RevealWord{}, RevealPuzzle{},
		ClearWord{}, ClearPuzzle{}, ToggleTimer{},
	}
	for _, a := range locked {
		if !a.Type().Locked() {
			t.Errorf("%s should be locked", a.Type())
		}
		if diff := cmp.Diff(s, Reduce(s, a)); diff != "" {
			t.Errorf("%s changed a revealed puzzle:\n%s", a.Type(), diff)
		}
	}

	s = Reduce(s, DismissCompletion{})
	if !s.CompletionDismissed {
		t.Error("dismiss should pass through the lock")
	}

	s = Reduce(s, UnlockPuzzle{})
	if s.IsRevealed {
		t.Fatal("unlock should clear IsRevealed")
	}
	s = Reduce(s, ClearPuzzle{})
	s = Reduce(s, InputLetter{Letter: "r"})
	if got := s.Cells[1][1].Value; got != "R" {
		t.Errorf("after unlock typing = %q, want R", got)
	}
}

func TestClearWord(t *testing.T) {
	s := typeWord(NewState(miniPuzzle()), "CARD")
	s = Reduce(s, SelectCell{Position: pos(0, 0)})
	s = Reduce(s, SetDirection{Direction: Down})
	s = Reduce(s, ClearWord{})

	if s.Cells[0][0].Value != "" {
		t.Error("anchor should be cleared")
	}
	if s.Cells[0][1].Value != "A" {
		t.Error("cells outside the down word must keep their letters")
	}
}

func TestTimerActions(t *testing.T) {
	s := NewState(miniPuzzle())
	if got := Reduce(s, TickTimer{}); got.Timer.ElapsedSeconds != 0 {
		t.Error("tick while stopped should be a no-op")
	}

	s = Reduce(s, ToggleTimer{})
	s = Reduce(s, TickTimer{})
	s = Reduce(s, TickTimer{})
	if s.Timer.ElapsedSeconds != 2 {
		t.Errorf("elapsed = %d, want 2", s.Timer.ElapsedSeconds)
	}

	s = Reduce(s, ToggleTimer{})
	if s.Timer.IsRunning || !s.Timer.Paused() {
		t.Error("second toggle should pause")
	}
}

func TestIncorrectPrompt(t *testing.T) {
	s := solveAll(NewState(miniPuzzle()))
	s.Cells = s.Cells.update([]Position{pos(0, 0)}, func(c CellState) CellState {
		c.Value = "X"
		return c
	})
	if !s.ShowIncorrectPrompt() {
		t.Fatal("full but wrong grid should prompt")
	}
	s = Reduce(s, DismissIncorrectCompletion{})
	if s.ShowIncorrectPrompt() {
		t.Error("dismissed prompt should stay hidden")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	p := miniPuzzle()
	s := typeWord(NewState(p), "CAXD")
	s = Reduce(s, CheckWord{})
	s = Reduce(s, SelectClue{Number: 7, Direction: Across})
	s = Reduce(s, TickTimer{})
	s = Reduce(s, TickTimer{})
	s = Reduce(s, RevealCell{})

	raw, err := EncodeSaved(Snapshot(s))
	if err != nil {
		t.Fatalf("EncodeSaved: %v", err)
	}
	saved, err := DecodeSaved(raw)
	if err != nil {
		t.Fatalf("DecodeSaved: %v", err)
	}
	got := Reduce(NewState(p), RestoreState{Saved: saved})

	for _, q := range s.Cells.whitePositions() {
		want := s.Cells[q.Row][q.Col]
		if want.Value == "" {
			continue
		}
		if diff := cmp.Diff(want, got.Cells[q.Row][q.Col]); diff != "" {
			t.Errorf("cell %v (-want +got):\n%s", q, diff)
		}
	}
	if got.Selected != s.Selected || got.Direction != s.Direction {
		t.Errorf("cursor = %v %v, want %v %v", got.Selected, got.Direction, s.Selected, s.Direction)
	}
	if got.Timer != (Timer{ElapsedSeconds: 2}) {
		t.Errorf("timer = %+v, want 2s stopped", got.Timer)
	}
}

func TestRestoreIgnoresInvalidEntries(t *testing.T) {
	s := NewState(miniPuzzle())
	saved := SavedState{
		CellValues: []CellValue{
			{Row: 0, Col: 4, Value: "Z", Status: StatusDefault}, // black
			{Row: 9, Col: 9, Value: "Z", Status: StatusDefault}, // off grid
			{Row: 1, Col: 1, Value: "r"},
		},
		SelectedPosition: pos(4, 0), // black
		Direction:        Down,
		ElapsedSeconds:   30,
		IsRevealed:       true,
	}
	got := Reduce(s, RestoreState{Saved: saved})

	if got.Cells[0][4].Value != "" {
		t.Error("black cell must stay empty")
	}
	if c := got.Cells[1][1]; c.Value != "R" || c.Status != StatusDefault {
		t.Errorf("restored cell = %+v", c)
	}
	if got.Selected != s.Selected {
		t.Errorf("cursor moved to a black cell: %v", got.Selected)
	}
	if !got.IsRevealed || got.Timer.IsRunning || got.Timer.ElapsedSeconds != 30 {
		t.Errorf("flags/timer not restored: %+v revealed=%v", got.Timer, got.IsRevealed)
	}
}

func TestPhase(t *testing.T) {
	s := NewState(miniPuzzle())
	if s.Phase() != PhasePlaying {
		t.Errorf("fresh Phase = %v", s.Phase())
	}
	s.IsComplete = true
	if s.Phase() != PhaseComplete {
		t.Errorf("complete Phase = %v", s.Phase())
	}
	s.CompletionDismissed = true
	if s.Phase() != PhaseCompleteDismissed {
		t.Errorf("dismissed Phase = %v", s.Phase())
	}
}

func TestNilActionIgnored(t *testing.T) {
	s := NewState(miniPuzzle())
	if diff := cmp.Diff(s, Reduce(s, nil)); diff != "" {
		t.Errorf("nil action changed state:\n%s", diff)
	}
}
