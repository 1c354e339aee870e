package crossword

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// miniPuzzle is a 5x5 grid with a shared anchor at (0,0) and two black
// corners:
//
//	C A R D .
//	A R E A .
//	R E A R .
//	D A R T S
//	. . . S O
func miniPuzzle() Puzzle {
	return Puzzle{
		ID:    "mini-test",
		Title: "Mini",
		Rows:  5,
		Cols:  5,
		Grid:  gridOf("CARD.", "AREA.", "REAR.", "DARTS", "...SO"),
		Clues: Clues{
			Across: []Clue{
				{Number: 1, Text: "Playing ___", Answer: "CARD", Row: 0, Col: 0},
				{Number: 5, Text: "Region", Answer: "AREA", Row: 1, Col: 0},
				{Number: 6, Text: "Back", Answer: "REAR", Row: 2, Col: 0},
				{Number: 7, Text: "Pub game", Answer: "DARTS", Row: 3, Col: 0},
				{Number: 9, Text: "Therefore", Answer: "SO", Row: 4, Col: 3},
			},
			Down: []Clue{
				{Number: 1, Text: "Greeting ___", Answer: "CARD", Row: 0, Col: 0},
				{Number: 2, Text: "Zone", Answer: "AREA", Row: 0, Col: 1},
				{Number: 3, Text: "Raise", Answer: "REAR", Row: 0, Col: 2},
				{Number: 4, Text: "Bullseye throwers", Answer: "DARTS", Row: 0, Col: 3},
				{Number: 8, Text: "Very", Answer: "SO", Row: 3, Col: 4},
			},
		},
	}
}

// catPuzzle has one black cell at (0,0); 1 Across CAT and 2 Down CAR both
// start at (0,1).
func catPuzzle() Puzzle {
	return Puzzle{
		ID:   "cat",
		Rows: 5,
		Cols: 5,
		Grid: gridOf(".CATX", "XAXXX", "XRXXX", "XXXXX", "XXXXX"),
		Clues: Clues{
			Across: []Clue{{Number: 1, Text: "Feline", Answer: "CAT", Row: 0, Col: 1}},
			Down:   []Clue{{Number: 2, Text: "Automobile", Answer: "CAR", Row: 0, Col: 1}},
		},
	}
}

func gridOf(rows ...string) [][]string {
	g := make([][]string, len(rows))
	for i, row := range rows {
		g[i] = strings.Split(row, "")
	}
	return g
}

func pos(r, c int) Position { return Position{Row: r, Col: c} }

// typeWord dispatches one InputLetter per letter.
func typeWord(s State, word string) State {
	for _, r := range word {
		s = Reduce(s, InputLetter{Letter: string(r)})
	}
	return s
}

// solveAll fills every white cell with its solution without the reducer.
func solveAll(s State) State {
	s.Cells = s.Cells.update(s.Cells.whitePositions(), func(c CellState) CellState {
		c.Value = c.Solution
		return c
	})
	return s
}

// memKV is an in-memory KV that can be made to fail.
type memKV struct {
	mu   sync.Mutex
	data map[string]string
	sets int
	fail bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

var errKV = errors.New("kv unavailable")

func (m *memKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", false, errKV
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errKV
	}
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errKV
	}
	delete(m.data, key)
	return nil
}

func (m *memKV) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memKV) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
