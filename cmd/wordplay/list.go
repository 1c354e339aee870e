package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and loaded puzzles",
	Long:  `Shows the registered games and every puzzle found in the bundled set and the --puzzles directory.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTitle")
	fmt.Fprintln(w, "  --\t-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %s\t%s\n", g.ID, g.Title)
	}
	w.Flush()

	lib, err := newLibrary(logger)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Puzzles:")
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Game\tID\tTitle\tSource")
	fmt.Fprintln(w, "  ----\t--\t-----\t------")
	for _, e := range lib.Entries() {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", e.Kind, e.ID, e.Title, e.Source)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'wordplay play <game> --puzzle <id>' to play a puzzle.")
	return nil
}
