package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordplay/internal/catalog"
	"github.com/vovakirdan/tui-wordplay/internal/config"
	"github.com/vovakirdan/tui-wordplay/internal/games/connections"
	"github.com/vovakirdan/tui-wordplay/internal/games/crossword"
	"github.com/vovakirdan/tui-wordplay/internal/platform/tui"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

var (
	flagConfig string
	flagPuzzle string
	flagDate   string
	flagUnlock bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Crossword controls:
  Letters         - Fill the current cell
  Arrows          - Move
  Tab/Shift+Tab   - Next/previous clue
  Space           - Toggle across/down
  Backspace       - Delete
  F1/F2/F3        - Check cell/word/puzzle
  F5/F6/F7        - Reveal cell/word/puzzle
  F9/F10          - Clear word/puzzle
  Ctrl+P          - Pause
  Esc             - Back, Ctrl+C - Quit

Connections controls:
  Arrows/hjkl     - Move
  Space or click  - Select a word
  Enter           - Submit the four selected words
  S               - Shuffle
  D               - Deselect all
  R               - Start over
  Esc/B           - Back, Q - Quit

Examples:
  wordplay play crossword
  wordplay play crossword --puzzle square-001
  wordplay play connections
  wordplay play connections --date 2024-03-01
  wordplay play crossword --config ./my-crossword.yaml --unlock`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPuzzle, "puzzle", "", "Puzzle id (default: first crossword, or today's Connections)")
	playCmd.Flags().StringVar(&flagDate, "date", "", "Connections date as YYYY-MM-DD (default: today)")
	playCmd.Flags().BoolVar(&flagUnlock, "unlock", false, "Allow unlocking a revealed crossword")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'wordplay list' to see available games", gameID)
	}

	date := time.Now().Format(catalog.DateLayout)
	if flagDate != "" {
		if _, err := time.Parse(catalog.DateLayout, flagDate); err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDate)
		}
		date = flagDate
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	lib, err := newLibrary(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	cat := catalog.New(lib, store, catalog.WithLogger(logger))

	// Set config, puzzle and collaborators for games before creation
	switch gameID {
	case crossword.GameID:
		p, err := pickCrossword(lib)
		if err != nil {
			return err
		}
		crossword.SetConfigPath(flagConfig)
		crossword.SetPuzzle(p)
		crossword.SetStore(cat.KV(""))
		crossword.SetLogger(logger.With("game", gameID))
		crossword.SetAllowUnlock(flagUnlock)

	case connections.GameID:
		p, err := pickConnections(lib, date, logger)
		if err != nil {
			return err
		}
		connections.SetConfigPath(flagConfig)
		connections.SetPuzzle(p)
		connections.SetLogger(logger.With("game", gameID))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, store, runtimeConfig(), tui.WithModelLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// pickCrossword returns the --puzzle crossword or the first one loaded.
func pickCrossword(lib *puzzles.Library) (crossword.Puzzle, error) {
	if flagPuzzle != "" {
		return lib.Crossword(flagPuzzle)
	}
	all := lib.Crosswords()
	if len(all) == 0 {
		return crossword.Puzzle{}, fmt.Errorf("crossword: %w", puzzles.ErrNotFound)
	}
	return all[0], nil
}

// pickConnections returns the --puzzle puzzle, or the one for date when
// the config asks for daily puzzles.
func pickConnections(lib *puzzles.Library, date string, logger *log.Logger) (connections.Puzzle, error) {
	if flagPuzzle != "" {
		return lib.Connections(flagPuzzle)
	}

	cfg, err := config.LoadConnections(flagConfig)
	if err != nil {
		return connections.Puzzle{}, err
	}
	if cfg.Daily || flagDate != "" {
		return lib.DailyConnections(date), nil
	}

	p, err := lib.Connections(puzzles.DailyID)
	if errors.Is(err, puzzles.ErrNotFound) {
		logger.Warn("no default connections puzzle, using fallback")
		return connections.FallbackPuzzle(date), nil
	}
	return p, err
}
