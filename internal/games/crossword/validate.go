package crossword

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError contains details about an authoring problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs authoring checks on a puzzle definition.
// Checks:
//   - Identity and dimensions are present
//   - Grid shape matches Rows x Cols with single-character cells
//   - Every clue span stays on white cells whose letters spell its answer
//   - Clue numbers are unique per direction
//
// The reducer never calls Validate; runtime play trusts the puzzle.
func Validate(p Puzzle) error {
	if strings.TrimSpace(p.ID) == "" {
		return ValidationError{Code: "MISSING_ID", Message: "puzzle has no id"}
	}
	if err := validateShape(p); err != nil {
		return err
	}
	for _, d := range []Direction{Across, Down} {
		if err := validateClues(p, d); err != nil {
			return err
		}
	}
	return nil
}

func validateShape(p Puzzle) error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return ValidationError{
			Code:    "BAD_DIMENSIONS",
			Message: fmt.Sprintf("dimensions %dx%d must be positive", p.Rows, p.Cols),
		}
	}
	if len(p.Grid) != p.Rows {
		return ValidationError{
			Code:    "BAD_GRID",
			Message: fmt.Sprintf("grid has %d rows, want %d", len(p.Grid), p.Rows),
		}
	}
	for r, row := range p.Grid {
		if len(row) != p.Cols {
			return ValidationError{
				Code:    "BAD_GRID",
				Message: fmt.Sprintf("grid row %d has %d cells, want %d", r, len(row), p.Cols),
			}
		}
		for c, ch := range row {
			if utf8.RuneCountInString(ch) != 1 {
				return ValidationError{
					Code:    "BAD_CELL",
					Message: fmt.Sprintf("cell (%d,%d) = %q is not a single character", r, c, ch),
				}
			}
		}
	}
	return nil
}

func validateClues(p Puzzle, d Direction) error {
	seen := make(map[int]bool)
	for _, clue := range p.Clues.List(d) {
		if seen[clue.Number] {
			return ValidationError{
				Code:    "DUPLICATE_CLUE",
				Message: fmt.Sprintf("%d %s appears twice", clue.Number, d),
			}
		}
		seen[clue.Number] = true

		if clue.Number <= 0 || clue.Answer == "" {
			return ValidationError{
				Code:    "BAD_CLUE",
				Message: fmt.Sprintf("%d %s needs a positive number and an answer", clue.Number, d),
			}
		}

		for i, want := range []rune(clue.Answer) {
			r, c := clue.Row, clue.Col+i
			if d == Down {
				r, c = clue.Row+i, clue.Col
			}
			if r < 0 || r >= p.Rows || c < 0 || c >= p.Cols {
				return ValidationError{
					Code:    "CLUE_OUT_OF_BOUNDS",
					Message: fmt.Sprintf("%d %s runs off the grid at (%d,%d)", clue.Number, d, r, c),
				}
			}
			got := p.Grid[r][c]
			if got == BlackCell {
				return ValidationError{
					Code:    "CLUE_ON_BLACK",
					Message: fmt.Sprintf("%d %s crosses black cell (%d,%d)", clue.Number, d, r, c),
				}
			}
			if !strings.EqualFold(got, string(want)) {
				return ValidationError{
					Code: "ANSWER_MISMATCH",
					Message: fmt.Sprintf("%d %s letter %d is %q but grid has %q",
						clue.Number, d, i+1, string(want), got),
				}
			}
		}
	}
	return nil
}
