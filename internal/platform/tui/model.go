package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for playing one game. The game's
// screen is the terminal minus a help line at the bottom.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	player     string
	sessionID  string
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	resultSent bool // Whether the result was recorded for the current game over
	started    bool // Whether the first tick has run
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithPlayer sets the player name stored with results.
func WithPlayer(player string) GameOption {
	return func(m *GameModel) { m.player = player }
}

// WithModelLogger sets the logger.
func WithModelLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.log = l
		}
	}
}

// NewGameModel creates a model for game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	mode := registry.ModeCommand
	if info, ok := registry.Info(game.ID()); ok {
		mode = info.Mode
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 1)),
		store:      store,
		log:        log.New(io.Discard),
		sessionID:  uuid.NewString(),
		config:     cfg,
		keys:       NewGameKeyMap(mode),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}
	m.config.Player = m.player
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.AddClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Apply(msg, &m.inputFrame) {
	case core.ActionQuit:
		m.close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.close()
		m.backToMenu = true
		return m, nil
	}
	return m, nil
}

// handleResize keeps the game running; games lay out from the screen size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-m.helpLines(), 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game with the frame's events.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// A game restored already finished was recorded when it ended.
	if !m.started {
		m.started = true
		m.resultSent = m.game.State().GameOver
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Record the result on game over (once)
	switch {
	case m.gameState.GameOver && !m.resultSent:
		m.recordResult()
		m.resultSent = true
	case !m.gameState.GameOver:
		m.resultSent = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) recordResult() {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		PuzzleID:  m.gameState.PuzzleID,
		Player:    m.player,
		Outcome:   m.gameState.Outcome,
		Score:     m.gameState.Score,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.log.Warn("could not record result", "game", m.game.ID(), "err", err)
		return
	}
	m.log.Info("result recorded", "game", m.game.ID(), "puzzle", m.gameState.PuzzleID,
		"outcome", m.gameState.Outcome, "score", m.gameState.Score)
}

// close releases the game's background resources.
func (m *GameModel) close() {
	if c, ok := m.game.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.log.Warn("closing game", "game", m.game.ID(), "err", err)
		}
	}
}

func (m GameModel) helpLines() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()) + helpHeight
	}
	return helpHeight
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if h := core.Max(m.config.ScreenH-m.helpLines(), 1); h != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, h)
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or leaves.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) error {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		exitOnBack{model},
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select cells, clues and tiles
	)

	_, err := p.Run()
	return err
}

// exitOnBack ends a standalone game when the player asks for the menu.
type exitOnBack struct {
	GameModel
}

func (e exitOnBack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := e.GameModel.Update(msg)
	gm := next.(GameModel)
	if gm.BackToMenu() {
		return exitOnBack{gm}, tea.Quit
	}
	return exitOnBack{gm}, cmd
}
