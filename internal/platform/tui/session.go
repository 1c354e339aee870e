package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

// sessionView identifies the active screen of a session.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewResults
)

// SessionModel manages the full session flow: menu -> game or results -> menu.
// This is the top-level model for SSH sessions and local menu play.
type SessionModel struct {
	launcher  Launcher
	store     *storage.Store
	config    core.RuntimeConfig
	player    string
	log       *log.Logger
	view      sessionView
	menu      MenuModel
	gameModel *GameModel
	results   ResultsModel
	quitting  bool
}

// SessionOption configures a SessionModel.
type SessionOption func(*SessionModel)

// WithSessionLogger sets the logger used by the session and its games.
func WithSessionLogger(l *log.Logger) SessionOption {
	return func(m *SessionModel) {
		if l != nil {
			m.log = l
		}
	}
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(launcher Launcher, store *storage.Store, cfg core.RuntimeConfig, player string, opts ...SessionOption) SessionModel {
	m := SessionModel{
		launcher: launcher,
		store:    store,
		config:   cfg,
		player:   player,
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.menu = NewMenuModel(launcher.Items(), cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.menu.Update(msg) // the menu's own tea.Quit only applies when it runs alone
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsResults() {
		m.results = NewResultsModel(m.store, m.launcher.FormatScore, m.config.ScreenW, m.config.ScreenH)
		m.view = viewResults
		return m, m.results.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := m.launcher.Launch(*selected, m.player)
		if err != nil {
			m.log.Warn("could not start game", "game", selected.GameID, "puzzle", selected.PuzzleID, "err", err)
			m.menu = m.menu.WithError(err)
			return m, nil
		}

		gm := NewGameModel(game, m.store, m.config,
			WithPlayer(m.player),
			WithModelLogger(m.log),
		)
		m.gameModel = &gm
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateResults handles updates when on the results screen.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.results.Update(msg)
	if resultsModel, ok := next.(ResultsModel); ok {
		m.results = resultsModel
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.results.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// backToMenu rebuilds the menu so new puzzles and the current date show up.
func (m *SessionModel) backToMenu() {
	m.menu = NewMenuModel(m.launcher.Items(), m.config.ScreenW, m.config.ScreenH)
	m.view = viewMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.view == viewGame
}

// InResults reports whether the results screen is showing.
func (m SessionModel) InResults() bool {
	return m.view == viewResults
}

// IsQuitting returns true if the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(launcher Launcher, store *storage.Store, cfg core.RuntimeConfig, player string, opts ...SessionOption) error {
	p := tea.NewProgram(
		NewSessionModel(launcher, store, cfg, player, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// RunResults shows the results screen on its own.
func RunResults(store *storage.Store, format ScoreFormatter, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(store, format, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
