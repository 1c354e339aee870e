// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-wordplay/internal/core"
)

// Game is the core interface that all puzzle games must implement.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, frame timing, and rendering.
//
// Games that own background resources (timers, pending saves) also
// implement io.Closer; the platform closes them when play ends.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "crossword").
	// Used for CLI commands and results storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset loads the configured puzzle and starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of player input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Mode selects which key bindings the platform uses for a game.
type Mode int

const (
	// ModeTyping routes printable keys to the game as letters.
	ModeTyping Mode = iota
	// ModeCommand treats printable keys as commands.
	ModeCommand
)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Mode  Mode
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, mode Mode, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Title comes from a throwaway instance; constructors must be cheap.
	g := f()
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: g.Title(), Mode: mode},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
