package connections

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordplay/internal/config"
	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

// GameID is the registry identifier.
const GameID = "connections"

// Package-level defaults used by the registry factory. Set from the CLI.
var (
	configPath    string
	defaultPuzzle = FallbackPuzzle("")
	defaultLogger *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPuzzle selects the puzzle new games start on.
func SetPuzzle(p Puzzle) {
	defaultPuzzle = p
}

// SetLogger sets the logger for new games.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

func init() {
	registry.Register(GameID, registry.ModeCommand, func() registry.Game {
		return New()
	})
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithPuzzle sets the puzzle to play.
func WithPuzzle(p Puzzle) GameOption {
	return func(g *Game) { g.puzzle = p }
}

// WithGameLogger sets the logger.
func WithGameLogger(l *log.Logger) GameOption {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithEngineOptions passes extra options to every engine the game creates.
func WithEngineOptions(opts ...Option) GameOption {
	return func(g *Game) { g.engineOpts = append(g.engineOpts, opts...) }
}

// Game adapts an Engine to the platform's Game interface. A cursor walks
// the tile grid; the engine itself knows nothing about it.
type Game struct {
	puzzle     Puzzle
	log        *log.Logger
	engineOpts []Option

	cfg     config.ConnectionsConfig
	engine  *Engine
	cursor  int
	screenW int
	screenH int
	layout  layout
}

// New creates a Connections game from the package defaults and opts.
func New(opts ...GameOption) *Game {
	g := &Game{
		puzzle: defaultPuzzle,
		log:    defaultLogger,
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
	return "Connections"
}

// Puzzle returns the puzzle being played.
func (g *Game) Puzzle() Puzzle {
	return g.puzzle
}

// Reset loads config and starts a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	loaded, err := config.LoadConnections(configPath)
	if err != nil {
		g.log.Warn("using default connections config", "err", err)
		loaded = config.DefaultConnectionsConfig()
	}
	g.cfg = loaded

	opts := []Option{
		WithLogger(g.log),
		WithMessageDuration(g.cfg.MessageDuration()),
	}
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	opts = append(opts, g.engineOpts...)

	g.closeEngine()
	g.engine = NewEngine(g.puzzle, opts...)
	g.cursor = 0
}

// Step applies the frame's events in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}
	for _, ev := range in.Events() {
		g.handle(ev)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handle(ev core.Input) {
	switch ev.Action {
	case core.ActionLeft:
		g.moveCursor(-1, 0)
	case core.ActionRight:
		g.moveCursor(1, 0)
	case core.ActionUp:
		g.moveCursor(0, -1)
	case core.ActionDown:
		g.moveCursor(0, 1)
	case core.ActionToggle:
		if w, ok := g.cursorWord(); ok {
			g.engine.ToggleWord(w)
		}
	case core.ActionConfirm:
		g.engine.SubmitGuess()
	case core.ActionShuffle:
		g.engine.Shuffle()
	case core.ActionDeselectAll:
		g.engine.DeselectAll()
	case core.ActionRestart:
		g.engine.ResetGame()
		g.cursor = 0
	case core.ActionClick:
		if w, ok := g.layout.hit(ev.X, ev.Y); ok {
			g.engine.ToggleWord(w)
			g.cursor = g.indexOf(w)
		}
	}
	g.clampCursor()
}

// moveCursor steps through the tile grid, GroupSize tiles per row.
func (g *Game) moveCursor(dx, dy int) {
	n := len(g.engine.State().RemainingWords)
	if n == 0 {
		return
	}
	row, col := g.cursor/GroupSize, g.cursor%GroupSize
	rows := (n + GroupSize - 1) / GroupSize
	col = (col + dx + GroupSize) % GroupSize
	row = (row + dy + rows) % rows
	next := row*GroupSize + col
	if next >= n {
		next = n - 1
	}
	g.cursor = next
}

func (g *Game) clampCursor() {
	n := len(g.engine.State().RemainingWords)
	g.cursor = core.Clamp(g.cursor, 0, core.Max(n-1, 0))
}

func (g *Game) cursorWord() (string, bool) {
	words := g.engine.State().RemainingWords
	if g.cursor < 0 || g.cursor >= len(words) {
		return "", false
	}
	return words[g.cursor], true
}

func (g *Game) indexOf(word string) int {
	for i, w := range g.engine.State().RemainingWords {
		if w == word {
			return i
		}
	}
	return g.cursor
}

// Cursor returns the index of the highlighted tile.
func (g *Game) Cursor() int {
	return g.cursor
}

// CurrentState returns the full engine state.
func (g *Game) CurrentState() State {
	if g.engine == nil {
		return State{Puzzle: g.puzzle, MistakesRemaining: MaxMistakes, Status: StatusPlaying}
	}
	return g.engine.State()
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	st := g.CurrentState()
	gs := core.GameState{
		PuzzleID: st.Puzzle.ID,
		Score:    st.MistakesMade(),
	}
	switch st.Status {
	case StatusWon:
		gs.GameOver = true
		gs.Outcome = core.OutcomeWon
	case StatusLost:
		gs.GameOver = true
		gs.Outcome = core.OutcomeLost
	}
	return gs
}

// Close cancels any pending message clear.
func (g *Game) Close() error {
	g.closeEngine()
	return nil
}

func (g *Game) closeEngine() {
	if g.engine == nil {
		return
	}
	//nolint:errcheck // Close never fails
	g.engine.Close()
	g.engine = nil
}
