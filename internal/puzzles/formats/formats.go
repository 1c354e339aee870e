// Package formats decodes puzzle files. A file holds one crossword or one
// Connections puzzle in JSON, YAML or TOML.
package formats

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-wordplay/internal/games/connections"
	"github.com/vovakirdan/tui-wordplay/internal/games/crossword"
)

// Kind names the game a document belongs to.
type Kind string

const (
	KindCrossword   Kind = "crossword"
	KindConnections Kind = "connections"
)

// Document is one decoded puzzle file. Exactly one of the puzzles is set.
type Document struct {
	Kind        Kind
	Crossword   *crossword.Puzzle
	Connections *connections.Puzzle
}

// ID returns the puzzle id.
func (d Document) ID() string {
	switch {
	case d.Crossword != nil:
		return d.Crossword.ID
	case d.Connections != nil:
		return d.Connections.ID
	}
	return ""
}

// Title returns a display name.
func (d Document) Title() string {
	switch {
	case d.Crossword != nil && d.Crossword.Title != "":
		return d.Crossword.Title
	case d.Connections != nil && d.Connections.Date != "":
		return d.Connections.Date
	}
	return d.ID()
}

// crosswordFile is the on-disk crossword shape. Layout is a compact
// alternative to Grid: one string per row, one character per cell.
type crosswordFile struct {
	Kind   Kind            `json:"kind" yaml:"kind" toml:"kind"`
	ID     string          `json:"id" yaml:"id" toml:"id"`
	Title  string          `json:"title" yaml:"title" toml:"title"`
	Author string          `json:"author" yaml:"author" toml:"author"`
	Rows   int             `json:"rows" yaml:"rows" toml:"rows"`
	Cols   int             `json:"cols" yaml:"cols" toml:"cols"`
	Grid   [][]string      `json:"grid" yaml:"grid" toml:"grid"`
	Layout []string        `json:"layout" yaml:"layout" toml:"layout"`
	Clues  crossword.Clues `json:"clues" yaml:"clues" toml:"clues"`
}

// probe reads just enough to tell the two kinds apart.
type probe struct {
	Kind   Kind  `json:"kind" yaml:"kind" toml:"kind"`
	Groups []any `json:"groups" yaml:"groups" toml:"groups"`
}

// unmarshalFunc is the decoder signature shared by json, yaml and toml.
type unmarshalFunc func(data []byte, v any) error

var decoders = map[string]unmarshalFunc{}

// Extensions returns supported file extensions.
func Extensions() []string {
	return []string{".json", ".yaml", ".yml", ".toml"}
}

// Supported reports whether path has a puzzle file extension.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Decode parses data using the decoder for ext (".json", ".yaml", ...).
func Decode(data []byte, ext string) (Document, error) {
	unmarshal, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return Document{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	var pr probe
	if err := unmarshal(data, &pr); err != nil {
		return Document{}, err
	}
	kind := pr.Kind
	if kind == "" {
		kind = KindCrossword
		if len(pr.Groups) > 0 {
			kind = KindConnections
		}
	}

	switch kind {
	case KindCrossword:
		var f crosswordFile
		if err := unmarshal(data, &f); err != nil {
			return Document{}, err
		}
		p := f.puzzle()
		return Document{Kind: kind, Crossword: &p}, nil
	case KindConnections:
		var p connections.Puzzle
		if err := unmarshal(data, &p); err != nil {
			return Document{}, err
		}
		if p.Groups == nil {
			p.Groups = []connections.WordGroup{}
		}
		return Document{Kind: kind, Connections: &p}, nil
	default:
		return Document{}, fmt.Errorf("unknown puzzle kind %q", kind)
	}
}

func (f crosswordFile) puzzle() crossword.Puzzle {
	grid := f.Grid
	if len(grid) == 0 && len(f.Layout) > 0 {
		grid = make([][]string, len(f.Layout))
		for r, line := range f.Layout {
			grid[r] = make([]string, 0, utf8.RuneCountInString(line))
			for _, ch := range line {
				grid[r] = append(grid[r], string(ch))
			}
		}
	}

	rows, cols := f.Rows, f.Cols
	if rows == 0 {
		rows = len(grid)
	}
	if cols == 0 && len(grid) > 0 {
		cols = len(grid[0])
	}
	return crossword.Puzzle{
		ID:     f.ID,
		Title:  f.Title,
		Author: f.Author,
		Rows:   rows,
		Cols:   cols,
		Grid:   grid,
		Clues:  f.Clues,
	}
}
