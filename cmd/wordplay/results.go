package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordplay/internal/catalog"
	"github.com/vovakirdan/tui-wordplay/internal/platform/tui"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
	"github.com/vovakirdan/tui-wordplay/internal/storage"
)

var (
	flagResultsLimit int
	flagInteractive  bool
	flagPlayer       string
)

var resultsCmd = &cobra.Command{
	Use:   "results [game]",
	Short: "Show best results and stats",
	Long: `Display the best solves for a game, or a summary of every game.

Crossword results are ranked by solve time and Connections results by
mistakes made. Only wins are ranked; stats count every finished game.

Examples:
  wordplay results
  wordplay results crossword
  wordplay results connections --limit 20
  wordplay results --player alice
  wordplay results -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of results to show")
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in the terminal UI")
	resultsCmd.Flags().StringVar(&flagPlayer, "player", "", "Show recent games of one player (\"local\" for local play)")
}

func runResults(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	format := catalog.FormatScore

	if flagInteractive {
		cfg := runtimeConfig()
		return tui.RunResults(store, format, cfg.ScreenW, cfg.ScreenH)
	}

	if flagPlayer != "" {
		return printRecent(store, format)
	}

	if len(args) == 0 {
		return printSummary(store, format)
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'wordplay list' to see available games", gameID)
	}

	results, err := store.TopResults(gameID, flagResultsLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Printf("Best results - %s\n", info.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordplay play %s' to set the first result!\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tPuzzle\tPlayer\tScore\tDate")
	fmt.Fprintln(w, "  ----\t------\t------\t-----\t----")
	for i, r := range results {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n", i+1, r.PuzzleID, playerName(r.Player),
			format(r.GameID, r.Score), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%), best %s\n",
			stats.Played, stats.Wins, stats.WinRate()*100, format(gameID, stats.BestScore))
	}
	return nil
}

// printSummary prints one stats line per registered game.
func printSummary(store *storage.Store, format tui.ScoreFormatter) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Game\tPlayed\tWins\tBest\tAverage\tLast played")
	fmt.Fprintln(w, "  ----\t------\t----\t----\t-------\t-----------")
	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			fmt.Fprintf(w, "  %s\t0\t0\t-\t-\t-\n", info.Title)
			continue
		}
		best := "-"
		if stats.Wins > 0 {
			best = format(info.ID, stats.BestScore)
		}
		fmt.Fprintf(w, "  %s\t%d\t%d\t%s\t%.1f\t%s\n", info.Title, stats.Played, stats.Wins,
			best, stats.AvgScore, stats.LastPlayed.Format("2006-01-02"))
	}
	return w.Flush()
}

// printRecent prints the latest games of --player.
func printRecent(store *storage.Store, format tui.ScoreFormatter) error {
	player := flagPlayer
	if player == "local" {
		player = ""
	}

	results, err := store.RecentResults(player, flagResultsLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}
	if len(results) == 0 {
		fmt.Printf("No games recorded for %s.\n", flagPlayer)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Date\tGame\tPuzzle\tOutcome\tScore")
	fmt.Fprintln(w, "  ----\t----\t------\t-------\t-----")
	for _, r := range results {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02 15:04"),
			r.GameID, r.PuzzleID, r.Outcome, format(r.GameID, r.Score))
	}
	return w.Flush()
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}
