package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordplay/internal/catalog"
	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

const fakeGameID = "tui-fake"

func init() {
	registry.Register(fakeGameID, registry.ModeCommand, func() registry.Game { return &fakeGame{} })
}

// fakeGame wins on Confirm and starts over on Restart.
type fakeGame struct {
	state  core.GameState
	resets int
	events []core.Input
	closed bool
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{PuzzleID: "p1"}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.events = append(g.events, in.Events()...)
	switch {
	case in.Has(core.ActionRestart):
		g.state = core.GameState{PuzzleID: "p1"}
	case in.Has(core.ActionConfirm):
		g.state.GameOver = true
		g.state.Outcome = core.OutcomeWon
		g.state.Score = 2
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawTextStyled(0, 0, "fake", core.Plain)
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Close() error {
	g.closed = true
	return nil
}

// fakeLauncher hands out fakeGames and remembers the last one.
type fakeLauncher struct {
	items  []catalog.Item
	last   *fakeGame
	player string
	fail   bool
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{items: []catalog.Item{
		{GameID: fakeGameID, PuzzleID: "p1", Title: "Puzzle One", Mode: registry.ModeCommand},
		{GameID: fakeGameID, PuzzleID: "p2", Title: "Puzzle Two", Mode: registry.ModeCommand},
	}}
}

func (l *fakeLauncher) Items() []catalog.Item { return l.items }

func (l *fakeLauncher) Launch(item catalog.Item, player string) (registry.Game, error) {
	if l.fail {
		return nil, errors.New("puzzle missing")
	}
	l.player = player
	l.last = &fakeGame{}
	return l.last, nil
}

func (l *fakeLauncher) FormatScore(_ string, score int) string {
	return "score"
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}
