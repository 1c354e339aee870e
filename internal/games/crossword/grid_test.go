package crossword

import (
	"errors"
	"testing"
)

func TestBuildGridSpellsEveryAnswer(t *testing.T) {
	for _, p := range []Puzzle{miniPuzzle(), catPuzzle()} {
		g := BuildGrid(p)
		for _, d := range []Direction{Across, Down} {
			for _, clue := range p.Clues.List(d) {
				word := g.WordCells(pos(clue.Row, clue.Col), d)
				got := ""
				for _, q := range word {
					got += g[q.Row][q.Col].Solution
				}
				if got != clue.Answer {
					t.Errorf("%s: %d %s spells %q, want %q", p.ID, clue.Number, d, got, clue.Answer)
				}
			}
		}
	}
}

func TestBuildGridNumbering(t *testing.T) {
	g := BuildGrid(miniPuzzle())

	tests := []struct {
		name   string
		at     Position
		number int
		across int
		down   int
	}{
		{"shared anchor", pos(0, 0), 1, 1, 1},
		{"down only anchor", pos(0, 1), 2, 1, 2},
		{"across only anchor", pos(1, 0), 5, 5, 1},
		{"interior", pos(1, 1), 0, 5, 2},
		{"down 8 anchor", pos(3, 4), 8, 7, 8},
		{"across 9 anchor", pos(4, 3), 9, 9, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := g[tt.at.Row][tt.at.Col]
			if c.Number != tt.number {
				t.Errorf("Number = %d, want %d", c.Number, tt.number)
			}
			if c.Clues.Across != tt.across || c.Clues.Down != tt.down {
				t.Errorf("Clues = %+v, want across %d down %d", c.Clues, tt.across, tt.down)
			}
		})
	}
}

func TestBuildGridAcrossLabelWins(t *testing.T) {
	g := BuildGrid(catPuzzle())
	c := g[0][1]
	if c.Number != 1 {
		t.Errorf("Number = %d, want across label 1", c.Number)
	}
	if !c.Intersection() {
		t.Error("(0,1) should be an intersection")
	}
}

func TestBuildGridBlackCells(t *testing.T) {
	g := BuildGrid(miniPuzzle())
	for _, p := range []Position{pos(0, 4), pos(1, 4), pos(2, 4), pos(4, 0), pos(4, 1), pos(4, 2)} {
		c := g[p.Row][p.Col]
		if !c.IsBlack || c.Solution != "" || c.Value != "" || c.Number != 0 || c.Clues != (ClueNumbers{}) {
			t.Errorf("black cell %v = %+v", p, c)
		}
	}
	for _, row := range g {
		for _, c := range row {
			if c.Status != StatusDefault {
				t.Errorf("cell (%d,%d) status %q, want default", c.Row, c.Col, c.Status)
			}
		}
	}
}

func TestGridUpdateCopiesOnWrite(t *testing.T) {
	g := BuildGrid(miniPuzzle())
	g2 := g.update([]Position{pos(1, 1)}, func(c CellState) CellState {
		c.Value = "R"
		return c
	})

	if g[1][1].Value != "" {
		t.Error("update mutated the original grid")
	}
	if g2[1][1].Value != "R" {
		t.Errorf("updated value = %q, want R", g2[1][1].Value)
	}
	if &g[0][0] != &g2[0][0] {
		t.Error("untouched rows should be shared")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(miniPuzzle()); err != nil {
		t.Fatalf("Validate(mini) = %v", err)
	}
	if err := Validate(catPuzzle()); err != nil {
		t.Fatalf("Validate(cat) = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Puzzle)
		code   string
	}{
		{"missing id", func(p *Puzzle) { p.ID = "" }, "MISSING_ID"},
		{"bad dimensions", func(p *Puzzle) { p.Rows = 0 }, "BAD_DIMENSIONS"},
		{"short grid", func(p *Puzzle) { p.Grid = p.Grid[:4] }, "BAD_GRID"},
		{"wide cell", func(p *Puzzle) { p.Grid[0][0] = "CA" }, "BAD_CELL"},
		{"answer mismatch", func(p *Puzzle) { p.Clues.Across[0].Answer = "CART" }, "ANSWER_MISMATCH"},
		{"runs off grid", func(p *Puzzle) { p.Clues.Across[4].Answer = "SOS" }, "CLUE_OUT_OF_BOUNDS"},
		{"crosses black", func(p *Puzzle) { p.Clues.Across[0].Answer = "CARDS" }, "CLUE_ON_BLACK"},
		{"duplicate", func(p *Puzzle) { p.Clues.Down[1].Number = 1 }, "DUPLICATE_CLUE"},
		{"empty answer", func(p *Puzzle) { p.Clues.Down[0].Answer = "" }, "BAD_CLUE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := miniPuzzle()
			tt.mutate(&p)
			err := Validate(p)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, want %s (%v)", verr.Code, tt.code, err)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"across", Across, false},
		{"DOWN", Down, false},
		{" a ", Across, false},
		{"d", Down, false},
		{"diagonal", Across, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
