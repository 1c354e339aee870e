package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordplay/internal/catalog"
	"github.com/vovakirdan/tui-wordplay/internal/config"
	"github.com/vovakirdan/tui-wordplay/internal/platform/tui"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a puzzle picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a puzzle.
When you leave a puzzle you return to the menu. Crossword progress is
saved and restored the next time you open the same puzzle.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play puzzle
  Tab          - Results
  Q            - Quit

Examples:
  wordplay menu
  wordplay menu --puzzles ./puzzles
  wordplay menu --db ./wordplay.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagUnlock, "unlock", false, "Allow unlocking a revealed crossword")
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	cat, err := newCatalog(lib, store, logger)
	if err != nil {
		return err
	}

	return tui.RunSession(cat, store, runtimeConfig(), "", tui.WithSessionLogger(logger))
}

// newCatalog builds the catalog with the unlock flag and the configured
// Connections daily setting.
func newCatalog(lib *puzzles.Library, store *storage.Store, logger *log.Logger) (*catalog.Catalog, error) {
	connCfg, err := config.LoadConnections("")
	if err != nil {
		return nil, err
	}
	crosswordCfg, err := config.LoadCrossword("")
	if err != nil {
		return nil, err
	}
	return catalog.New(lib, store,
		catalog.WithLogger(logger),
		catalog.WithAllowUnlock(flagUnlock || crosswordCfg.AllowUnlock),
		catalog.WithDaily(connCfg.Daily),
	), nil
}
