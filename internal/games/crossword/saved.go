package crossword

import (
	"encoding/json"
	"fmt"
)

// CellValue is one persisted non-empty cell.
type CellValue struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Value  string     `json:"value"`
	Status CellStatus `json:"status"`
}

// SavedState is the persisted projection of a State.
type SavedState struct {
	CellValues       []CellValue `json:"cellValues"`
	SelectedPosition Position    `json:"selectedPosition"`
	Direction        Direction   `json:"direction"`
	ElapsedSeconds   int         `json:"elapsedSeconds"`
	IsComplete       bool        `json:"isComplete"`
	IsRevealed       bool        `json:"isRevealed"`
}

// Snapshot projects s into its saved form. Only filled white cells are kept.
func Snapshot(s State) SavedState {
	saved := SavedState{
		CellValues:       []CellValue{},
		SelectedPosition: s.Selected,
		Direction:        s.Direction,
		ElapsedSeconds:   s.Timer.ElapsedSeconds,
		IsComplete:       s.IsComplete,
		IsRevealed:       s.IsRevealed,
	}
	for _, row := range s.Cells {
		for _, c := range row {
			if c.IsBlack || c.Value == "" {
				continue
			}
			saved.CellValues = append(saved.CellValues, CellValue{
				Row:    c.Row,
				Col:    c.Col,
				Value:  c.Value,
				Status: c.Status,
			})
		}
	}
	return saved
}

// EncodeSaved serializes a snapshot to JSON.
func EncodeSaved(saved SavedState) (string, error) {
	b, err := json.Marshal(saved)
	if err != nil {
		return "", fmt.Errorf("crossword: encode saved state: %w", err)
	}
	return string(b), nil
}

// DecodeSaved parses a JSON snapshot.
func DecodeSaved(raw string) (SavedState, error) {
	var saved SavedState
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return SavedState{}, fmt.Errorf("crossword: decode saved state: %w", err)
	}
	return saved, nil
}
