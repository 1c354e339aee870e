package crossword

import "strings"

// CellStatus is the feedback mark on a cell.
type CellStatus string

const (
	StatusDefault   CellStatus = "default"
	StatusCorrect   CellStatus = "correct"
	StatusIncorrect CellStatus = "incorrect"
	StatusRevealed  CellStatus = "revealed"
)

// ClueNumbers records which clues a cell belongs to. Zero means none.
type ClueNumbers struct {
	Across int
	Down   int
}

// Get returns the clue number for a direction, 0 when absent.
func (n ClueNumbers) Get(d Direction) int {
	if d == Down {
		return n.Down
	}
	return n.Across
}

// Has reports whether the cell belongs to a clue in direction d.
func (n ClueNumbers) Has(d Direction) bool {
	return n.Get(d) != 0
}

// CellState is the derived per-cell record.
type CellState struct {
	Row      int
	Col      int
	IsBlack  bool
	Number   int // corner label, 0 when absent
	Solution string
	Value    string
	Status   CellStatus
	Clues    ClueNumbers
}

// Intersection reports whether the cell sits on both an across and a down clue.
func (c CellState) Intersection() bool {
	return c.Clues.Has(Across) && c.Clues.Has(Down)
}

// Correct reports whether the value matches the solution, ignoring case.
func (c CellState) Correct() bool {
	return strings.EqualFold(c.Value, c.Solution)
}

// Grid is the annotated cell matrix. It is treated as immutable: updates
// return a new Grid sharing untouched rows with the old one.
type Grid [][]CellState

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p lies on the grid.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g) && p.Col >= 0 && p.Col < len(g[p.Row])
}

// At returns the cell at p.
func (g Grid) At(p Position) (CellState, bool) {
	if !g.InBounds(p) {
		return CellState{}, false
	}
	return g[p.Row][p.Col], true
}

// White reports whether p is an in-bounds non-black cell.
func (g Grid) White(p Position) bool {
	c, ok := g.At(p)
	return ok && !c.IsBlack
}

// update applies fn to each listed position, copying only the touched rows.
func (g Grid) update(ps []Position, fn func(CellState) CellState) Grid {
	if len(ps) == 0 {
		return g
	}
	out := make(Grid, len(g))
	copy(out, g)
	copied := make(map[int]bool)
	for _, p := range ps {
		if !g.InBounds(p) {
			continue
		}
		if !copied[p.Row] {
			row := make([]CellState, len(g[p.Row]))
			copy(row, g[p.Row])
			out[p.Row] = row
			copied[p.Row] = true
		}
		out[p.Row][p.Col] = fn(out[p.Row][p.Col])
	}
	return out
}

// whitePositions lists every non-black cell in row-major order.
func (g Grid) whitePositions() []Position {
	var ps []Position
	for _, row := range g {
		for _, c := range row {
			if !c.IsBlack {
				ps = append(ps, Position{Row: c.Row, Col: c.Col})
			}
		}
	}
	return ps
}

// BuildGrid derives the annotated cell matrix from a puzzle.
//
// Across clues always label their anchor; a down clue labels its anchor only
// when no across clue already did, so a cell starting both shares one number.
// Clue spans are not checked against the grid; see Validate.
func BuildGrid(p Puzzle) Grid {
	numbers := make(map[Position]int)
	members := make(map[Position]ClueNumbers)

	for _, clue := range p.Clues.Across {
		for i := range len([]rune(clue.Answer)) {
			pos := Position{Row: clue.Row, Col: clue.Col + i}
			m := members[pos]
			m.Across = clue.Number
			members[pos] = m
		}
		numbers[Position{Row: clue.Row, Col: clue.Col}] = clue.Number
	}

	for _, clue := range p.Clues.Down {
		for i := range len([]rune(clue.Answer)) {
			pos := Position{Row: clue.Row + i, Col: clue.Col}
			m := members[pos]
			m.Down = clue.Number
			members[pos] = m
		}
		anchor := Position{Row: clue.Row, Col: clue.Col}
		if numbers[anchor] == 0 {
			numbers[anchor] = clue.Number
		}
	}

	g := make(Grid, p.Rows)
	for r := range p.Rows {
		row := make([]CellState, p.Cols)
		for c := range p.Cols {
			ch := BlackCell
			if r < len(p.Grid) && c < len(p.Grid[r]) {
				ch = p.Grid[r][c]
			}
			pos := Position{Row: r, Col: c}
			cell := CellState{Row: r, Col: c, Status: StatusDefault}
			if ch == BlackCell {
				cell.IsBlack = true
			} else {
				cell.Solution = ch
				cell.Number = numbers[pos]
				cell.Clues = members[pos]
			}
			row[c] = cell
		}
		g[r] = row
	}
	return g
}
