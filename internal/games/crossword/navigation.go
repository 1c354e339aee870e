package crossword

import (
	"fmt"
	"sort"
	"strings"
)

// Move is a screen-direction cursor step.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Axis returns the crossword direction a move travels along.
func (m Move) Axis() Direction {
	if m == MoveLeft || m == MoveRight {
		return Across
	}
	return Down
}

func (m Move) delta() (dr, dc int) {
	switch m {
	case MoveUp:
		return -1, 0
	case MoveDown:
		return 1, 0
	case MoveLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

func (m Move) String() string {
	return [...]string{"up", "down", "left", "right"}[m]
}

// ClueRef identifies a clue by number and direction.
type ClueRef struct {
	Number    int
	Direction Direction
}

func (c ClueRef) String() string {
	return fmt.Sprintf("%d %s", c.Number, c.Direction)
}

// WordCells returns the cells of the word through p in direction d, in
// increasing coordinate order. Empty when p is black or has no clue in d.
func (g Grid) WordCells(p Position, d Direction) []Position {
	cell, ok := g.At(p)
	if !ok || cell.IsBlack {
		return nil
	}
	num := cell.Clues.Get(d)
	if num == 0 {
		return nil
	}

	var ps []Position
	if d == Across {
		for c, other := range g[p.Row] {
			if other.Clues.Across == num {
				ps = append(ps, Position{Row: p.Row, Col: c})
			}
		}
		return ps
	}
	for r := range g {
		if p.Col < len(g[r]) && g[r][p.Col].Clues.Down == num {
			ps = append(ps, Position{Row: r, Col: p.Col})
		}
	}
	return ps
}

// MovedPosition steps once in m, skipping black cells. At the grid edge the
// original position is returned.
func (g Grid) MovedPosition(p Position, m Move) Position {
	dr, dc := m.delta()
	next := Position{Row: p.Row + dr, Col: p.Col + dc}
	for g.InBounds(next) {
		if !g[next.Row][next.Col].IsBlack {
			return next
		}
		next.Row += dr
		next.Col += dc
	}
	return p
}

// NextInputPosition is where the cursor goes after typing at p: the next
// empty cell later in the word, else the next cell, else p itself.
func (g Grid) NextInputPosition(p Position, d Direction) Position {
	word := g.WordCells(p, d)
	idx := indexOf(word, p)

	for _, q := range word[idx+1:] {
		if g[q.Row][q.Col].Value == "" {
			return q
		}
	}
	if idx+1 < len(word) {
		return word[idx+1]
	}
	return p
}

// PrevInputPosition is the previous cell in the word, or p at its start.
func (g Grid) PrevInputPosition(p Position, d Direction) Position {
	word := g.WordCells(p, d)
	if idx := indexOf(word, p); idx > 0 {
		return word[idx-1]
	}
	return p
}

// AllClueNumbers returns the sorted distinct clue numbers for d.
func (g Grid) AllClueNumbers(d Direction) []int {
	seen := make(map[int]bool)
	var nums []int
	for _, row := range g {
		for _, c := range row {
			if n := c.Clues.Get(d); n != 0 && !seen[n] {
				seen[n] = true
				nums = append(nums, n)
			}
		}
	}
	sort.Ints(nums)
	return nums
}

// ClueRing returns every across clue followed by every down clue.
func (g Grid) ClueRing() []ClueRef {
	var ring []ClueRef
	for _, d := range []Direction{Across, Down} {
		for _, n := range g.AllClueNumbers(d) {
			ring = append(ring, ClueRef{Number: n, Direction: d})
		}
	}
	return ring
}

// NextClue steps one clue forward (or back when reverse) around the ring,
// wrapping at both ends. An unknown starting clue yields the first clue.
// The result is false only when the grid has no clues.
func (g Grid) NextClue(number int, d Direction, reverse bool) (ClueRef, bool) {
	ring := g.ClueRing()
	if len(ring) == 0 {
		return ClueRef{}, false
	}

	cur := -1
	for i, ref := range ring {
		if ref.Number == number && ref.Direction == d {
			cur = i
			break
		}
	}
	if cur < 0 {
		return ring[0], true
	}

	step := 1
	if reverse {
		step = -1
	}
	return ring[(cur+step+len(ring))%len(ring)], true
}

// FirstCellOfClue finds the clue anchor: the cell labelled with number that
// belongs to the clue. Any member cell is used if no label matches.
func (g Grid) FirstCellOfClue(number int, d Direction) (Position, bool) {
	for _, row := range g {
		for _, c := range row {
			if c.Clues.Get(d) == number && c.Number == number {
				return Position{Row: c.Row, Col: c.Col}, true
			}
		}
	}
	for _, row := range g {
		for _, c := range row {
			if c.Clues.Get(d) == number {
				return Position{Row: c.Row, Col: c.Col}, true
			}
		}
	}
	return Position{}, false
}

// EnsureDirection keeps d if the cell at p belongs to it, flips to the other
// axis if only that one exists, and otherwise leaves d unchanged.
func (g Grid) EnsureDirection(p Position, d Direction) Direction {
	c, ok := g.At(p)
	if !ok || c.IsBlack || c.Clues.Has(d) {
		return d
	}
	if c.Clues.Has(d.Other()) {
		return d.Other()
	}
	return d
}

// FirstNonBlackCell returns the first white cell in row-major order.
func (g Grid) FirstNonBlackCell() Position {
	for _, row := range g {
		for _, c := range row {
			if !c.IsBlack {
				return Position{Row: c.Row, Col: c.Col}
			}
		}
	}
	return Position{}
}

// IsFilled reports whether every white cell has a value.
func (g Grid) IsFilled() bool {
	for _, row := range g {
		for _, c := range row {
			if !c.IsBlack && strings.TrimSpace(c.Value) == "" {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every white cell matches its solution.
func (g Grid) IsComplete() bool {
	for _, row := range g {
		for _, c := range row {
			if !c.IsBlack && !c.Correct() {
				return false
			}
		}
	}
	return true
}

// FormatTime renders elapsed seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func indexOf(ps []Position, p Position) int {
	for i, q := range ps {
		if q == p {
			return i
		}
	}
	return -1
}
