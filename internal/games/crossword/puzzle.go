// Package crossword implements the crossword engine: the puzzle model, the
// derived cell index, navigation over that index, a pure reducer for every
// player action, and the timer and persistence adapters that drive it.
package crossword

import (
	"fmt"
	"strings"
)

// BlackCell is the grid sentinel for an unplayable cell.
const BlackCell = "."

// Direction is the axis a clue runs along.
type Direction int

const (
	Across Direction = iota
	Down
)

// String returns "across" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Other returns the perpendicular axis.
func (d Direction) Other() Direction {
	if d == Down {
		return Across
	}
	return Down
}

// MarshalText encodes the direction as its lowercase name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes "across" or "down".
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across", "a":
		return Across, nil
	case "down", "d":
		return Down, nil
	default:
		return Across, fmt.Errorf("crossword: unknown direction %q", s)
	}
}

// Position is a grid coordinate.
type Position struct {
	Row int `json:"row" yaml:"row" toml:"row"`
	Col int `json:"col" yaml:"col" toml:"col"`
}

// Clue is a numbered clue with its start coordinate and solution.
// The answer length defines the clue's span.
type Clue struct {
	Number int    `json:"number" yaml:"number" toml:"number"`
	Text   string `json:"text" yaml:"text" toml:"text"`
	Answer string `json:"answer" yaml:"answer" toml:"answer"`
	Row    int    `json:"row" yaml:"row" toml:"row"`
	Col    int    `json:"col" yaml:"col" toml:"col"`
}

// Clues holds the across and down clue lists.
type Clues struct {
	Across []Clue `json:"across" yaml:"across" toml:"across"`
	Down   []Clue `json:"down" yaml:"down" toml:"down"`
}

// List returns the clues for one direction.
func (c Clues) List(d Direction) []Clue {
	if d == Down {
		return c.Down
	}
	return c.Across
}

// Puzzle is a static crossword definition. Grid is Rows x Cols single
// characters, BlackCell marking unplayable cells.
type Puzzle struct {
	ID     string     `json:"id" yaml:"id" toml:"id"`
	Title  string     `json:"title" yaml:"title" toml:"title"`
	Author string     `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Rows   int        `json:"rows" yaml:"rows" toml:"rows"`
	Cols   int        `json:"cols" yaml:"cols" toml:"cols"`
	Grid   [][]string `json:"grid" yaml:"grid" toml:"grid"`
	Clues  Clues      `json:"clues" yaml:"clues" toml:"clues"`
}

// Clue looks up a clue by number and direction.
func (p Puzzle) Clue(number int, d Direction) (Clue, bool) {
	for _, c := range p.Clues.List(d) {
		if c.Number == number {
			return c, true
		}
	}
	return Clue{}, false
}

// ClueCount returns the total number of across and down clues.
func (p Puzzle) ClueCount() int {
	return len(p.Clues.Across) + len(p.Clues.Down)
}
