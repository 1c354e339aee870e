// wordplay is a terminal puzzle platform for crosswords and Connections.
//
// Usage:
//
//	wordplay list                - List games and loaded puzzles
//	wordplay play <game>         - Play a game
//	wordplay menu                - Start menu to pick puzzles interactively
//	wordplay serve               - Start SSH server for remote play
//	wordplay results [game]      - Show best results and stats
//	wordplay validate <files...> - Check puzzle files
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible shuffles
//	--db <path>       - Set database path (default: ~/.wordplay/wordplay.db)
//	--puzzles <dir>   - Directory of extra puzzle files
//	--log-file <path> - Write logs to a file
//	--verbose         - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import games to register them
	_ "github.com/vovakirdan/tui-wordplay/internal/games/connections"
	_ "github.com/vovakirdan/tui-wordplay/internal/games/crossword"

	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagPuzzlesDir string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordplay",
	Short: "Wordplay - Crosswords and Connections in your terminal",
	Long: `Wordplay is a terminal puzzle platform with two games: a crossword
with checks, reveals and saved progress, and Connections, where you sort
sixteen words into four groups of four.

Available commands:
  list      - Show games and loaded puzzles
  play      - Play a specific game directly
  menu      - Interactive puzzle picker menu
  serve     - Start SSH server for remote play
  results   - View best results and stats
  validate  - Check puzzle files for authoring mistakes

Examples:
  wordplay list
  wordplay play crossword --puzzle mini-001
  wordplay play connections --date 2024-03-01
  wordplay menu --puzzles ./puzzles
  wordplay serve --ssh :2222 --watch
  wordplay validate ./puzzles/*.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordplay/wordplay.db", "Path to saves and results database")
	rootCmd.PersistentFlags().StringVar(&flagPuzzlesDir, "puzzles", "~/.wordplay/puzzles", "Directory of puzzle files (bundled puzzles are always loaded)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded. The returned
// closer releases the log file.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	switch {
	case flagLogFile != "":
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordplay",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// newLibrary opens the puzzle library. A missing puzzles directory is not
// an error; only bundled puzzles are used then.
func newLibrary(logger *log.Logger) (*puzzles.Library, error) {
	dir, err := expandHome(flagPuzzlesDir)
	if err != nil {
		return nil, err
	}
	if dir != "" {
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			logger.Debug("puzzle dir not found, using bundled puzzles", "dir", dir)
			dir = ""
		}
	}
	return puzzles.New(dir, puzzles.WithLogger(logger)), nil
}

// openStore opens the database, or returns nil with a warning so play can
// continue without saves.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
