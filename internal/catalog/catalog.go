// Package catalog turns the puzzle library into playable games. It pairs
// each registered game with the puzzles it can run and builds per-player
// instances wired to the right save namespace.
package catalog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordplay/internal/games/connections"
	"github.com/vovakirdan/tui-wordplay/internal/games/crossword"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

// DateLayout is the format of Connections puzzle dates.
const DateLayout = "2006-01-02"

// Item is one playable entry: a game plus the puzzle it will load.
// An empty PuzzleID on a Connections item means today's daily puzzle.
type Item struct {
	GameID   string
	PuzzleID string
	Title    string
	Mode     registry.Mode
}

// Daily reports whether the item resolves its puzzle by date.
func (i Item) Daily() bool {
	return i.GameID == connections.GameID && i.PuzzleID == ""
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger handed to games.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithAllowUnlock lets crossword players unlock revealed puzzles.
func WithAllowUnlock(allow bool) Option {
	return func(c *Catalog) { c.allowUnlock = allow }
}

// WithDaily toggles the daily Connections entry. Without it the daily
// fixture is listed like any other puzzle.
func WithDaily(daily bool) Option {
	return func(c *Catalog) { c.daily = daily }
}

// WithClock replaces time.Now for daily lookups.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// Catalog builds games from a puzzle library. Saved crossword progress
// goes to the store's per-player bucket, or to process memory without a
// store.
type Catalog struct {
	lib         *puzzles.Library
	store       *storage.Store
	log         *log.Logger
	allowUnlock bool
	daily       bool
	now         func() time.Time

	mu     sync.Mutex
	memory map[string]*storage.MemoryKV
}

// New creates a catalog. store may be nil.
func New(lib *puzzles.Library, store *storage.Store, opts ...Option) *Catalog {
	c := &Catalog{
		lib:    lib,
		store:  store,
		log:    log.New(io.Discard),
		daily:  true,
		now:    time.Now,
		memory: make(map[string]*storage.MemoryKV),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Library returns the underlying puzzle library.
func (c *Catalog) Library() *puzzles.Library {
	return c.lib
}

// Today returns the current date in DateLayout.
func (c *Catalog) Today() string {
	return c.now().Format(DateLayout)
}

// Items lists every playable entry in registry order.
func (c *Catalog) Items() []Item {
	var items []Item
	for _, info := range registry.List() {
		switch info.ID {
		case crossword.GameID:
			for _, p := range c.lib.Crosswords() {
				title := p.Title
				if title == "" {
					title = p.ID
				}
				items = append(items, Item{GameID: info.ID, PuzzleID: p.ID, Title: title, Mode: info.Mode})
			}
		case connections.GameID:
			if c.daily {
				items = append(items, Item{GameID: info.ID, Title: "Daily " + c.Today(), Mode: info.Mode})
			}
			for _, p := range c.lib.ConnectionsPuzzles() {
				if c.daily && p.ID == puzzles.DailyID {
					continue
				}
				title := p.ID
				if p.Date != "" {
					title = p.Date
				}
				items = append(items, Item{GameID: info.ID, PuzzleID: p.ID, Title: title, Mode: info.Mode})
			}
		default:
			items = append(items, Item{GameID: info.ID, Title: info.Title, Mode: info.Mode})
		}
	}
	return items
}

// Find resolves a game and optional puzzle id to an item. An empty
// puzzleID picks the first crossword or today's Connections puzzle.
func (c *Catalog) Find(gameID, puzzleID string) (Item, error) {
	info, ok := registry.Info(gameID)
	if !ok {
		return Item{}, fmt.Errorf("unknown game %q", gameID)
	}
	for _, it := range c.Items() {
		if it.GameID != gameID {
			continue
		}
		if puzzleID == "" || it.PuzzleID == puzzleID {
			return it, nil
		}
	}
	if gameID == connections.GameID {
		if puzzleID == "" {
			return Item{GameID: gameID, Title: "Daily " + c.Today(), Mode: info.Mode}, nil
		}
		if _, err := c.lib.Connections(puzzleID); err == nil {
			return Item{GameID: gameID, PuzzleID: puzzleID, Title: puzzleID, Mode: info.Mode}, nil
		}
	}
	return Item{}, fmt.Errorf("%s %q: %w", gameID, puzzleID, puzzles.ErrNotFound)
}

// Launch builds a fresh game for item on behalf of player.
func (c *Catalog) Launch(item Item, player string) (registry.Game, error) {
	logger := c.log.With("game", item.GameID, "player", player)

	switch item.GameID {
	case crossword.GameID:
		p, err := c.lib.Crossword(item.PuzzleID)
		if err != nil {
			return nil, err
		}
		return crossword.New(
			crossword.WithPuzzle(p),
			crossword.WithStore(c.KV(player)),
			crossword.WithGameLogger(logger),
			crossword.WithAllowUnlock(c.allowUnlock),
		), nil

	case connections.GameID:
		p, err := c.connectionsPuzzle(item)
		if err != nil {
			return nil, err
		}
		return connections.New(
			connections.WithPuzzle(p),
			connections.WithGameLogger(logger),
		), nil
	}

	return registry.Create(item.GameID)
}

func (c *Catalog) connectionsPuzzle(item Item) (connections.Puzzle, error) {
	if item.Daily() {
		return c.lib.DailyConnections(c.Today()), nil
	}
	return c.lib.Connections(item.PuzzleID)
}

// KV returns the save namespace for player.
func (c *Catalog) KV(player string) crossword.KV {
	if c.store != nil {
		return c.store.Bucket(player)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kv, ok := c.memory[player]
	if !ok {
		kv = storage.NewMemoryKV()
		c.memory[player] = kv
	}
	return kv
}

// FormatScore renders a result score for display.
func (c *Catalog) FormatScore(gameID string, score int) string {
	return FormatScore(gameID, score)
}

// FormatScore renders a score: solve time for crosswords, mistakes for
// Connections.
func FormatScore(gameID string, score int) string {
	switch gameID {
	case crossword.GameID:
		return crossword.FormatTime(score)
	case connections.GameID:
		if score == 1 {
			return "1 mistake"
		}
		return fmt.Sprintf("%d mistakes", score)
	}
	return fmt.Sprintf("%d", score)
}
