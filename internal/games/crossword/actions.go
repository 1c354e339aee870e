package crossword

// ActionType names a reducer action.
type ActionType int

const (
	TypeSelectCell ActionType = iota
	TypeToggleDirection
	TypeSetDirection
	TypeInputLetter
	TypeDeleteLetter
	TypeMove
	TypeNextClue
	TypePrevClue
	TypeSelectClue
	TypeCheckCell
	TypeCheckWord
	TypeCheckPuzzle
	TypeRevealCell
	TypeRevealWord
	TypeRevealPuzzle
	TypeClearWord
	TypeClearPuzzle
	TypeTickTimer
	TypeToggleTimer
	TypeDismissCompletion
	TypeDismissIncorrectCompletion
	TypeUnlockPuzzle
	TypeRestoreState
)

var actionTypeNames = [...]string{
	TypeSelectCell:                 "SELECT_CELL",
	TypeToggleDirection:            "TOGGLE_DIRECTION",
	TypeSetDirection:               "SET_DIRECTION",
	TypeInputLetter:                "INPUT_LETTER",
	TypeDeleteLetter:               "DELETE_LETTER",
	TypeMove:                       "MOVE",
	TypeNextClue:                   "NEXT_CLUE",
	TypePrevClue:                   "PREV_CLUE",
	TypeSelectClue:                 "SELECT_CLUE",
	TypeCheckCell:                  "CHECK_CELL",
	TypeCheckWord:                  "CHECK_WORD",
	TypeCheckPuzzle:                "CHECK_PUZZLE",
	TypeRevealCell:                 "REVEAL_CELL",
	TypeRevealWord:                 "REVEAL_WORD",
	TypeRevealPuzzle:               "REVEAL_PUZZLE",
	TypeClearWord:                  "CLEAR_WORD",
	TypeClearPuzzle:                "CLEAR_PUZZLE",
	TypeTickTimer:                  "TICK_TIMER",
	TypeToggleTimer:                "TOGGLE_TIMER",
	TypeDismissCompletion:          "DISMISS_COMPLETION",
	TypeDismissIncorrectCompletion: "DISMISS_INCORRECT_COMPLETION",
	TypeUnlockPuzzle:               "UNLOCK_PUZZLE",
	TypeRestoreState:               "RESTORE_STATE",
}

func (t ActionType) String() string {
	if int(t) >= 0 && int(t) < len(actionTypeNames) {
		return actionTypeNames[t]
	}
	return "UNKNOWN"
}

// Locked reports whether the action is rejected while the puzzle is revealed.
func (t ActionType) Locked() bool {
	switch t {
	case TypeTickTimer, TypeDismissCompletion, TypeDismissIncorrectCompletion,
		TypeUnlockPuzzle, TypeRestoreState:
		return false
	default:
		return true
	}
}

// Action is a reducer input.
type Action interface {
	Type() ActionType
}

type (
	// SelectCell moves the cursor to a cell; reselecting flips the axis.
	SelectCell struct{ Position Position }
	// ToggleDirection flips the axis when the current cell supports it.
	ToggleDirection struct{}
	// SetDirection forces the axis.
	SetDirection struct{ Direction Direction }
	// InputLetter types one letter at the cursor and advances.
	InputLetter struct{ Letter string }
	// DeleteLetter clears the current cell or steps back and clears.
	DeleteLetter struct{}
	// MoveCursor moves by one screen direction.
	MoveCursor struct{ Move Move }
	// NextClue jumps to the next clue in ring order.
	NextClue struct{}
	// PrevClue jumps to the previous clue in ring order.
	PrevClue struct{}
	// SelectClue jumps to a clue's anchor.
	SelectClue struct {
		Number    int
		Direction Direction
	}
	CheckCell                  struct{}
	CheckWord                  struct{}
	CheckPuzzle                struct{}
	RevealCell                 struct{}
	RevealWord                 struct{}
	RevealPuzzle               struct{}
	ClearWord                  struct{}
	ClearPuzzle                struct{}
	TickTimer                  struct{}
	ToggleTimer                struct{}
	DismissCompletion          struct{}
	DismissIncorrectCompletion struct{}
	UnlockPuzzle               struct{}
	// RestoreState applies a persisted snapshot.
	RestoreState struct{ Saved SavedState }
)

func (SelectCell) Type() ActionType                 { return TypeSelectCell }
func (ToggleDirection) Type() ActionType            { return TypeToggleDirection }
func (SetDirection) Type() ActionType               { return TypeSetDirection }
func (InputLetter) Type() ActionType                { return TypeInputLetter }
func (DeleteLetter) Type() ActionType               { return TypeDeleteLetter }
func (MoveCursor) Type() ActionType                 { return TypeMove }
func (NextClue) Type() ActionType                   { return TypeNextClue }
func (PrevClue) Type() ActionType                   { return TypePrevClue }
func (SelectClue) Type() ActionType                 { return TypeSelectClue }
func (CheckCell) Type() ActionType                  { return TypeCheckCell }
func (CheckWord) Type() ActionType                  { return TypeCheckWord }
func (CheckPuzzle) Type() ActionType                { return TypeCheckPuzzle }
func (RevealCell) Type() ActionType                 { return TypeRevealCell }
func (RevealWord) Type() ActionType                 { return TypeRevealWord }
func (RevealPuzzle) Type() ActionType               { return TypeRevealPuzzle }
func (ClearWord) Type() ActionType                  { return TypeClearWord }
func (ClearPuzzle) Type() ActionType                { return TypeClearPuzzle }
func (TickTimer) Type() ActionType                  { return TypeTickTimer }
func (ToggleTimer) Type() ActionType                { return TypeToggleTimer }
func (DismissCompletion) Type() ActionType          { return TypeDismissCompletion }
func (DismissIncorrectCompletion) Type() ActionType { return TypeDismissIncorrectCompletion }
func (UnlockPuzzle) Type() ActionType               { return TypeUnlockPuzzle }
func (RestoreState) Type() ActionType               { return TypeRestoreState }
