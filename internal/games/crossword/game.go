package crossword

import (
	"io"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordplay/internal/config"
	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

// GameID is the registry identifier.
const GameID = "crossword"

// Package-level defaults used by the registry factory. Set from the CLI.
var (
	configPath     string
	defaultPuzzle  Puzzle
	defaultStore   KV
	defaultLogger  *log.Logger
	unlockOverride bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPuzzle selects the puzzle new games start on.
func SetPuzzle(p Puzzle) {
	defaultPuzzle = p
}

// SetStore sets the persistence surface for new games.
func SetStore(kv KV) {
	defaultStore = kv
}

// SetLogger sets the logger for new games.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// SetAllowUnlock enables the unlock key regardless of config.
func SetAllowUnlock(allow bool) {
	unlockOverride = allow
}

func init() {
	registry.Register(GameID, registry.ModeTyping, func() registry.Game {
		return New()
	})
}

// Option configures a Game.
type Option func(*Game)

// WithPuzzle sets the puzzle to play.
func WithPuzzle(p Puzzle) Option {
	return func(g *Game) { g.puzzle = p }
}

// WithStore sets the persistence surface.
func WithStore(kv KV) Option {
	return func(g *Game) { g.store = kv }
}

// WithGameLogger sets the logger.
func WithGameLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithAllowUnlock enables the unlock key.
func WithAllowUnlock(allow bool) Option {
	return func(g *Game) { g.allowUnlock = allow }
}

// Game adapts a Session to the platform's Game interface.
type Game struct {
	puzzle      Puzzle
	store       KV
	log         *log.Logger
	allowUnlock bool

	cfg     config.CrosswordConfig
	session *Session
	screenW int
	screenH int
	layout  layout
}

// New creates a crossword game from the package defaults and opts.
func New(opts ...Option) *Game {
	g := &Game{
		puzzle:      defaultPuzzle,
		store:       defaultStore,
		log:         defaultLogger,
		allowUnlock: unlockOverride,
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Crossword"
}

// Puzzle returns the puzzle being played.
func (g *Game) Puzzle() Puzzle {
	return g.puzzle
}

// Reset loads config, closes any previous session and resumes saved
// progress for the puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	loaded, err := config.LoadCrossword(configPath)
	if err != nil {
		g.log.Warn("using default crossword config", "err", err)
		loaded = config.DefaultCrosswordConfig()
	}
	g.cfg = loaded
	if g.cfg.AllowUnlock {
		g.allowUnlock = true
	}

	g.closeSession()
	g.session = NewSession(g.puzzle, g.store,
		WithLogger(g.log),
		WithTickInterval(g.cfg.TickInterval()),
		WithSaveDebounce(g.cfg.SaveDebounce()),
		WithKeyPrefix(g.cfg.Persistence.KeyPrefix),
	)
	if g.session.Load() {
		g.log.Debug("restored progress", "puzzle", g.puzzle.ID)
	}
}

// Step applies the frame's events in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	for _, ev := range in.Events() {
		g.handle(ev)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handle(ev core.Input) {
	if ev.Action == core.ActionRestart {
		if err := g.session.Forget(); err != nil {
			g.log.Debug("clear saved progress failed", "err", err)
		}
		return
	}
	if a := g.actionFor(ev); a != nil {
		g.session.Dispatch(a)
	}
}

// actionFor maps a platform event to a reducer action, or nil.
func (g *Game) actionFor(ev core.Input) Action {
	st := g.session.State()

	switch ev.Action {
	case core.ActionLetter:
		if !unicode.IsLetter(ev.Letter) {
			return nil
		}
		return InputLetter{Letter: string(ev.Letter)}
	case core.ActionUp:
		return MoveCursor{Move: MoveUp}
	case core.ActionDown:
		return MoveCursor{Move: MoveDown}
	case core.ActionLeft:
		return MoveCursor{Move: MoveLeft}
	case core.ActionRight:
		return MoveCursor{Move: MoveRight}
	case core.ActionNext:
		return NextClue{}
	case core.ActionPrev:
		return PrevClue{}
	case core.ActionToggle:
		return ToggleDirection{}
	case core.ActionDelete:
		return DeleteLetter{}
	case core.ActionPause:
		return ToggleTimer{}
	case core.ActionCheckCell:
		return CheckCell{}
	case core.ActionCheckWord:
		return CheckWord{}
	case core.ActionCheckPuzzle:
		return CheckPuzzle{}
	case core.ActionRevealCell:
		return RevealCell{}
	case core.ActionRevealWord:
		return RevealWord{}
	case core.ActionRevealPuzzle:
		return RevealPuzzle{}
	case core.ActionClearWord:
		return ClearWord{}
	case core.ActionClearPuzzle:
		return ClearPuzzle{}
	case core.ActionConfirm:
		switch {
		case st.ShowCompletion():
			return DismissCompletion{}
		case st.ShowIncorrectPrompt():
			return DismissIncorrectCompletion{}
		}
	case core.ActionUnlock:
		if g.allowUnlock {
			return UnlockPuzzle{}
		}
	case core.ActionClick:
		return g.layout.hit(ev.X, ev.Y)
	}
	return nil
}

// CurrentState returns the full crossword state.
func (g *Game) CurrentState() State {
	if g.session == nil {
		return NewState(g.puzzle)
	}
	return g.session.State()
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	st := g.CurrentState()
	gs := core.GameState{
		PuzzleID: st.Puzzle.ID,
		Score:    st.Timer.ElapsedSeconds,
		Paused:   st.Timer.Paused(),
	}
	switch {
	case st.IsRevealed:
		gs.GameOver = true
		gs.Outcome = core.OutcomeRevealed
	case st.IsComplete:
		gs.GameOver = true
		gs.Outcome = core.OutcomeSolved
	}
	return gs
}

// Close flushes progress and stops the session's background work.
func (g *Game) Close() error {
	g.closeSession()
	return nil
}

func (g *Game) closeSession() {
	if g.session == nil {
		return
	}
	if err := g.session.Flush(); err != nil {
		g.log.Debug("final save failed", "puzzle", g.puzzle.ID, "err", err)
	}
	//nolint:errcheck // Close never fails
	g.session.Close()
	g.session = nil
}
