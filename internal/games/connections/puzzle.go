// Package connections implements the Connections grouping puzzle: sixteen
// words hide four categories of four, and the player has four mistakes to
// find them all.
package connections

import (
	"fmt"
	"strings"
)

// Difficulty is a group's tier, easiest first.
type Difficulty int

const (
	Yellow Difficulty = iota
	Green
	Blue
	Purple
)

var difficultyNames = [...]string{"yellow", "green", "blue", "purple"}

// String returns the tier name.
func (d Difficulty) String() string {
	if d >= Yellow && d <= Purple {
		return difficultyNames[d]
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Rank returns the sort order, 0 for yellow through 3 for purple.
func (d Difficulty) Rank() int {
	return int(d)
}

// MarshalText encodes the tier name.
func (d Difficulty) MarshalText() ([]byte, error) {
	if d < Yellow || d > Purple {
		return nil, fmt.Errorf("connections: invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a tier name.
func (d *Difficulty) UnmarshalText(b []byte) error {
	parsed, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDifficulty parses a tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), nil
		}
	}
	return Yellow, fmt.Errorf("connections: unknown difficulty %q", s)
}

// WordGroup is one hidden category.
type WordGroup struct {
	Category   string     `json:"category" yaml:"category" toml:"category"`
	Words      []string   `json:"words" yaml:"words" toml:"words"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty" toml:"difficulty"`
	Clue       string     `json:"clue,omitempty" yaml:"clue,omitempty" toml:"clue,omitempty"`
}

// Puzzle is a Connections definition: four groups of four words.
type Puzzle struct {
	ID     string      `json:"id" yaml:"id" toml:"id"`
	Date   string      `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`
	Groups []WordGroup `json:"groups" yaml:"groups" toml:"groups"`
}

// FallbackID identifies the empty puzzle used when none can be loaded.
const FallbackID = "fallback"

// FallbackPuzzle is the empty board shown when the daily puzzle is missing.
func FallbackPuzzle(date string) Puzzle {
	return Puzzle{ID: FallbackID, Date: date, Groups: []WordGroup{}}
}

// Words returns every word in group order.
func (p Puzzle) Words() []string {
	words := make([]string, 0, len(p.Groups)*GroupSize)
	for _, g := range p.Groups {
		words = append(words, g.Words...)
	}
	return words
}

// Playable reports whether the puzzle has any groups.
func (p Puzzle) Playable() bool {
	return len(p.Groups) > 0
}

// ValidationError contains details about an authoring problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a puzzle has four groups of four distinct words,
// one group per tier. The engine itself never validates.
func Validate(p Puzzle) error {
	if strings.TrimSpace(p.ID) == "" {
		return ValidationError{Code: "MISSING_ID", Message: "puzzle has no id"}
	}
	if len(p.Groups) != GroupCount {
		return ValidationError{
			Code:    "GROUP_COUNT",
			Message: fmt.Sprintf("puzzle has %d groups, want %d", len(p.Groups), GroupCount),
		}
	}

	words := make(map[string]string)
	tiers := make(map[Difficulty]string)
	categories := make(map[string]bool)
	for _, g := range p.Groups {
		if strings.TrimSpace(g.Category) == "" {
			return ValidationError{Code: "MISSING_CATEGORY", Message: "group has no category"}
		}
		if categories[g.Category] {
			return ValidationError{
				Code:    "DUPLICATE_CATEGORY",
				Message: fmt.Sprintf("category %q appears twice", g.Category),
			}
		}
		categories[g.Category] = true

		if len(g.Words) != GroupSize {
			return ValidationError{
				Code:    "GROUP_SIZE",
				Message: fmt.Sprintf("%q has %d words, want %d", g.Category, len(g.Words), GroupSize),
			}
		}
		if g.Difficulty < Yellow || g.Difficulty > Purple {
			return ValidationError{
				Code:    "BAD_DIFFICULTY",
				Message: fmt.Sprintf("%q has invalid difficulty %d", g.Category, int(g.Difficulty)),
			}
		}
		if other, ok := tiers[g.Difficulty]; ok {
			return ValidationError{
				Code:    "DUPLICATE_TIER",
				Message: fmt.Sprintf("%q and %q are both %s", other, g.Category, g.Difficulty),
			}
		}
		tiers[g.Difficulty] = g.Category

		for _, w := range g.Words {
			key := strings.ToUpper(strings.TrimSpace(w))
			if key == "" {
				return ValidationError{Code: "EMPTY_WORD", Message: fmt.Sprintf("%q has an empty word", g.Category)}
			}
			if other, ok := words[key]; ok {
				return ValidationError{
					Code:    "DUPLICATE_WORD",
					Message: fmt.Sprintf("%q is in both %q and %q", w, other, g.Category),
				}
			}
			words[key] = g.Category
		}
	}
	return nil
}
