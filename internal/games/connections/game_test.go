package connections

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

func newTestGame(t *testing.T, sched *fakeScheduler) *Game {
	t.Helper()
	g := New(WithPuzzle(samplePuzzle()), WithEngineOptions(WithScheduler(sched.schedule)))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	t.Cleanup(func() { g.Close() })
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// selectGroup moves the cursor onto each word of want and toggles it.
func selectGroup(t *testing.T, g *Game, want []string) {
	t.Helper()
	for _, w := range want {
		idx := -1
		for i, r := range g.CurrentState().RemainingWords {
			if r == w {
				idx = i
			}
		}
		if idx < 0 {
			t.Fatalf("%s not on the board", w)
		}
		g.cursor = idx
		g.Step(frame(core.ActionToggle))
	}
}

func TestRegistered(t *testing.T) {
	info, ok := registry.Info(GameID)
	if !ok {
		t.Fatal("connections not registered")
	}
	if info.Mode != registry.ModeCommand {
		t.Errorf("mode = %v, want command", info.Mode)
	}
	if info.Title != "Connections" {
		t.Errorf("title = %q", info.Title)
	}
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, &fakeScheduler{})

	g.Step(frame(core.ActionLeft))
	if g.Cursor() != 3 {
		t.Errorf("left from 0 = %d, want 3", g.Cursor())
	}
	g.Step(frame(core.ActionUp))
	if g.Cursor() != 15 {
		t.Errorf("up from 3 = %d, want 15", g.Cursor())
	}
	g.Step(frame(core.ActionDown, core.ActionRight))
	if g.Cursor() != 0 {
		t.Errorf("down, right from 15 = %d, want 0", g.Cursor())
	}
}

func TestToggleAndSubmit(t *testing.T) {
	g := newTestGame(t, &fakeScheduler{})

	selectGroup(t, g, fish)
	if n := len(g.CurrentState().SelectedWords); n != 4 {
		t.Fatalf("selected %d words, want 4", n)
	}

	res := g.Step(frame(core.ActionConfirm))
	st := g.CurrentState()
	if len(st.SolvedGroups) != 1 || st.SolvedGroups[0].Category != "Fish" {
		t.Errorf("solved = %+v", st.SolvedGroups)
	}
	if res.State.GameOver {
		t.Error("game over after one group")
	}
	if g.Cursor() >= len(st.RemainingWords) {
		t.Errorf("cursor %d outside %d tiles", g.Cursor(), len(st.RemainingWords))
	}
}

func TestShuffleAndDeselect(t *testing.T) {
	g := newTestGame(t, &fakeScheduler{})
	before := g.CurrentState().RemainingWords

	selectGroup(t, g, []string{"MARS", "TAB"})
	g.Step(frame(core.ActionShuffle, core.ActionDeselectAll))

	st := g.CurrentState()
	if len(st.SelectedWords) != 0 {
		t.Errorf("selection = %v, want empty", st.SelectedWords)
	}
	if len(st.RemainingWords) != len(before) {
		t.Errorf("shuffle changed word count")
	}
}

func TestOutcomes(t *testing.T) {
	t.Run("won", func(t *testing.T) {
		g := newTestGame(t, &fakeScheduler{})
		for _, grp := range [][]string{fish, planets, keys, balls} {
			selectGroup(t, g, grp)
			g.Step(frame(core.ActionConfirm))
		}
		gs := g.State()
		if !gs.GameOver || gs.Outcome != core.OutcomeWon || gs.Score != 0 {
			t.Errorf("state = %+v, want won with 0 mistakes", gs)
		}
	})

	t.Run("lost", func(t *testing.T) {
		g := newTestGame(t, &fakeScheduler{})
		wrong := [][]string{
			{"BASS", "MARS", "TAB", "EYE"},
			{"SOLE", "VENUS", "SHIFT", "FOOT"},
			{"PIKE", "EARTH", "ENTER", "SNOW"},
			{"CARP", "SATURN", "ESCAPE", "BASKET"},
		}
		for _, w := range wrong {
			g.Step(frame(core.ActionDeselectAll))
			selectGroup(t, g, w)
			g.Step(frame(core.ActionConfirm))
		}
		gs := g.State()
		if !gs.GameOver || gs.Outcome != core.OutcomeLost || gs.Score != MaxMistakes {
			t.Errorf("state = %+v, want lost with %d mistakes", gs, MaxMistakes)
		}

		g.Step(frame(core.ActionRestart))
		if g.State().GameOver {
			t.Error("restart should start a new game")
		}
	})
}

func TestRenderAndClick(t *testing.T) {
	g := newTestGame(t, &fakeScheduler{})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Create four groups of four!", "Mistakes remaining", "BASS", "SATURN"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	target := g.layout.tiles[5]
	f := core.NewInputFrame()
	f.AddClick(target.rect.X+1, target.rect.Y+1)
	g.Step(f)

	if !g.CurrentState().IsSelected(target.word) {
		t.Errorf("click did not select %s", target.word)
	}
	if g.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", g.Cursor())
	}
}

func TestRenderRevealsGroupsWhenOver(t *testing.T) {
	g := newTestGame(t, &fakeScheduler{})
	for _, w := range [][]string{
		{"BASS", "MARS", "TAB", "EYE"},
		{"SOLE", "VENUS", "SHIFT", "FOOT"},
		{"PIKE", "EARTH", "ENTER", "SNOW"},
		{"CARP", "SATURN", "ESCAPE", "BASKET"},
	} {
		g.Step(frame(core.ActionDeselectAll))
		selectGroup(t, g, w)
		g.Step(frame(core.ActionConfirm))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"FISH", "PLANETS", "KEYBOARD KEYS", "___BALL", "Out of mistakes"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderFallback(t *testing.T) {
	g := New(WithPuzzle(FallbackPuzzle("")))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	defer g.Close()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "No puzzle available") {
		t.Error("fallback board should say no puzzle is available")
	}
}
