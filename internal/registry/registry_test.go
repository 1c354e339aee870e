package registry

import (
	"testing"

	"github.com/vovakirdan/tui-wordplay/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", ModeCommand, func() Game { return stubGame{id: "stub-b"} })
	Register("stub-a", ModeTyping, func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Fatal("Exists reported wrong membership")
	}

	info, ok := Info("stub-a")
	if !ok || info.Title != "Stub stub-a" || info.Mode != ModeTyping {
		t.Errorf("Info(stub-a) = %+v, %v", info, ok)
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("created %q, want stub-b", g.ID())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", ModeCommand, func() Game { return stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("stub-dup", ModeCommand, func() Game { return stubGame{id: "stub-dup"} })
}
