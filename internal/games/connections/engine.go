package connections

import (
	"io"
	"math/rand"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	GroupSize   = 4
	GroupCount  = 4
	MaxMistakes = 4

	DefaultMessageDuration = 2 * time.Second
)

// Messages shown to the player.
const (
	MessageAlreadyGuessed  = "Already guessed!"
	MessageOneAway         = "One away..."
	MessageCongratulations = "Congratulations!"
)

// Status is the game phase.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// State is a snapshot of a game. Slices are never mutated after they are
// published, so a returned State stays valid while the engine moves on.
type State struct {
	Puzzle              Puzzle
	RemainingWords      []string
	SelectedWords       []string
	SolvedGroups        []WordGroup
	MistakesRemaining   int
	GuessedCombinations [][]string
	Status              Status
	Message             string
}

// IsSelected reports whether word is in the current selection.
func (s State) IsSelected(word string) bool {
	return slices.Contains(s.SelectedWords, word)
}

// CanSubmit reports whether a guess may be submitted.
func (s State) CanSubmit() bool {
	return len(s.SelectedWords) == GroupSize && s.Status == StatusPlaying
}

// CanDeselectAll reports whether there is a selection to clear.
func (s State) CanDeselectAll() bool {
	return len(s.SelectedWords) > 0 && s.Status == StatusPlaying
}

// MistakesMade returns the number of wrong guesses so far.
func (s State) MistakesMade() int {
	return MaxMistakes - s.MistakesRemaining
}

// AllGroups returns every group, easiest first.
func (s State) AllGroups() []WordGroup {
	return sortedGroups(s.Puzzle.Groups)
}

// Solved reports whether a group with the given category has been found.
func (s State) Solved(category string) bool {
	for _, g := range s.SolvedGroups {
		if g.Category == category {
			return true
		}
	}
	return false
}

// Scheduler runs f after d and returns a function that cancels it. The
// cancel function reports whether the call was prevented.
type Scheduler func(d time.Duration, f func()) (cancel func() bool)

// TimerScheduler schedules on real time.
func TimerScheduler(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the shuffle.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMessageDuration sets how long a message stays visible.
func WithMessageDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.messageFor = d
		}
	}
}

// WithScheduler replaces the message timer.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.schedule = s
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine runs one Connections game. It is safe for concurrent use; the
// only background work is the pending message clear.
type Engine struct {
	mu    sync.Mutex
	state State

	rng        *rand.Rand
	messageFor time.Duration
	schedule   Scheduler
	log        *log.Logger

	cancelClear func() bool
	messageGen  uint64
	closed      bool
}

// NewEngine starts a game on p with the words freshly shuffled.
func NewEngine(p Puzzle, opts ...Option) *Engine {
	e := &Engine{
		messageFor: DefaultMessageDuration,
		schedule:   TimerScheduler,
		log:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.state = e.initial(p)
	return e
}

func (e *Engine) initial(p Puzzle) State {
	return State{
		Puzzle:            p,
		RemainingWords:    e.shuffled(p.Words()),
		MistakesRemaining: MaxMistakes,
		Status:            StatusPlaying,
	}
}

// shuffled returns a permuted copy of words.
func (e *Engine) shuffled(words []string) []string {
	out := slices.Clone(words)
	e.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// IsSelected reports whether word is selected.
func (e *Engine) IsSelected(word string) bool {
	return e.State().IsSelected(word)
}

// CanSubmit reports whether SubmitGuess would evaluate a guess.
func (e *Engine) CanSubmit() bool {
	return e.State().CanSubmit()
}

// CanDeselectAll reports whether there is a selection to clear.
func (e *Engine) CanDeselectAll() bool {
	return e.State().CanDeselectAll()
}

// AllGroups returns every group, easiest first.
func (e *Engine) AllGroups() []WordGroup {
	return e.State().AllGroups()
}

// ToggleWord adds word to the selection, or removes it if already there.
// A fifth word is ignored. Nothing changes once the game is over.
func (e *Engine) ToggleWord(word string) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Status != StatusPlaying {
		return e.state
	}
	sel := e.state.SelectedWords
	if i := slices.Index(sel, word); i >= 0 {
		e.state.SelectedWords = slices.Delete(slices.Clone(sel), i, i+1)
		return e.state
	}
	if len(sel) < GroupSize {
		e.state.SelectedWords = append(slices.Clone(sel), word)
	}
	return e.state
}

// DeselectAll clears the selection.
func (e *Engine) DeselectAll() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.SelectedWords = nil
	return e.state
}

// Shuffle permutes the remaining words.
func (e *Engine) Shuffle() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.RemainingWords = e.shuffled(e.state.RemainingWords)
	return e.state
}

// SubmitGuess evaluates the four selected words.
func (e *Engine) SubmitGuess() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if !st.CanSubmit() {
		return st
	}

	guess := sortedWords(st.SelectedWords)
	for _, prev := range st.GuessedCombinations {
		if slices.Equal(sortedWords(prev), guess) {
			e.showMessage(MessageAlreadyGuessed)
			return e.state
		}
	}

	var matched *WordGroup
	oneAway := false
	for i := range st.Puzzle.Groups {
		g := &st.Puzzle.Groups[i]
		if st.Solved(g.Category) {
			continue
		}
		n := overlap(g.Words, st.SelectedWords)
		if n == GroupSize {
			matched = g
			break
		}
		if n == GroupSize-1 {
			oneAway = true
		}
	}

	if matched != nil {
		st.SolvedGroups = sortedGroups(append(slices.Clone(st.SolvedGroups), *matched))
		st.RemainingWords = slices.DeleteFunc(slices.Clone(st.RemainingWords), func(w string) bool {
			return slices.Contains(matched.Words, w)
		})
		st.SelectedWords = nil
		st.Message = ""
		e.stopClear()
		e.state = st
		e.log.Debug("group solved", "puzzle", st.Puzzle.ID, "category", matched.Category)
		if len(st.SolvedGroups) == GroupCount {
			e.state.Status = StatusWon
			e.showMessage(MessageCongratulations)
		}
		return e.state
	}

	st.MistakesRemaining--
	st.GuessedCombinations = append(slices.Clone(st.GuessedCombinations), slices.Clone(st.SelectedWords))
	if st.MistakesRemaining <= 0 {
		st.MistakesRemaining = 0
		st.Status = StatusLost
		st.SelectedWords = nil
	}
	e.state = st
	if oneAway {
		e.showMessage(MessageOneAway)
	}
	return e.state
}

// ResetGame starts the same puzzle over with a fresh shuffle.
func (e *Engine) ResetGame() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopClear()
	e.state = e.initial(e.state.Puzzle)
	return e.state
}

// Close cancels the pending message clear. The engine keeps answering
// State but no longer clears messages.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.stopClear()
	return nil
}

// showMessage sets the message and schedules its clear, replacing any
// clear still pending. Caller holds mu.
func (e *Engine) showMessage(msg string) {
	e.stopClear()
	e.state.Message = msg
	if e.closed {
		return
	}

	e.messageGen++
	gen := e.messageGen
	e.cancelClear = e.schedule(e.messageFor, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || e.messageGen != gen {
			return
		}
		e.state.Message = ""
		e.cancelClear = nil
	})
}

func (e *Engine) stopClear() {
	e.messageGen++
	if e.cancelClear != nil {
		e.cancelClear()
		e.cancelClear = nil
	}
}

func overlap(group, selected []string) int {
	n := 0
	for _, w := range selected {
		if slices.Contains(group, w) {
			n++
		}
	}
	return n
}

func sortedWords(words []string) []string {
	out := slices.Clone(words)
	slices.Sort(out)
	return out
}

func sortedGroups(groups []WordGroup) []WordGroup {
	out := slices.Clone(groups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Difficulty.Rank() < out[j].Difficulty.Rank()
	})
	return out
}
