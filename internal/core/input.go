package core

// Action represents a semantic player intent, abstracted from physical key presses.
// The same action may mean different things in different games (ActionToggle
// flips the crossword axis but selects a tile in Connections).
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionNext    // Tab - next clue
	ActionPrev    // Shift+Tab - previous clue
	ActionToggle  // Space - toggle direction / toggle tile
	ActionLetter  // A typed letter, carried in Input.Letter
	ActionDelete  // Backspace, Delete
	ActionConfirm // Enter - submit guess / dismiss prompt
	ActionBack    // Escape - back to menu
	ActionRestart // Start the puzzle over
	ActionQuit    // Ctrl+C - exit session
	ActionPause   // Pause/resume the clock

	ActionCheckCell
	ActionCheckWord
	ActionCheckPuzzle
	ActionRevealCell
	ActionRevealWord
	ActionRevealPuzzle
	ActionClearWord
	ActionClearPuzzle
	ActionUnlock

	ActionShuffle
	ActionDeselectAll

	ActionClick // Mouse press, carried in Input.X/Input.Y
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionNext:         "Next",
	ActionPrev:         "Prev",
	ActionToggle:       "Toggle",
	ActionLetter:       "Letter",
	ActionDelete:       "Delete",
	ActionConfirm:      "Confirm",
	ActionBack:         "Back",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
	ActionPause:        "Pause",
	ActionCheckCell:    "CheckCell",
	ActionCheckWord:    "CheckWord",
	ActionCheckPuzzle:  "CheckPuzzle",
	ActionRevealCell:   "RevealCell",
	ActionRevealWord:   "RevealWord",
	ActionRevealPuzzle: "RevealPuzzle",
	ActionClearWord:    "ClearWord",
	ActionClearPuzzle:  "ClearPuzzle",
	ActionUnlock:       "Unlock",
	ActionShuffle:      "Shuffle",
	ActionDeselectAll:  "DeselectAll",
	ActionClick:        "Click",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Input is a single player event within a frame.
type Input struct {
	Action Action
	Letter rune // Only meaningful for ActionLetter
	X, Y   int  // Screen cell, only meaningful for ActionClick
}

// InputFrame collects the player events received between two frames.
// Unlike a set of pressed buttons, typing is order sensitive ("A" then
// Backspace differs from Backspace then "A"), so events keep arrival order.
type InputFrame struct {
	events []Input
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.events = append(f.events, Input{Action: a})
}

// AddLetter records a typed letter for this frame.
func (f *InputFrame) AddLetter(r rune) {
	f.events = append(f.events, Input{Action: ActionLetter, Letter: r})
}

// AddClick records a mouse press at screen cell (x, y).
func (f *InputFrame) AddClick(x, y int) {
	f.events = append(f.events, Input{Action: ActionClick, X: x, Y: y})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// Events returns the frame's events in arrival order.
func (f InputFrame) Events() []Input {
	return f.events
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}
