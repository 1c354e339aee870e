package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordplay/internal/puzzles"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles/formats"
)

// errInvalid marks a validate run with at least one bad file.
var errInvalid = errors.New("some puzzles are invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Check puzzle files for authoring mistakes",
	Long: `Decode and check crossword and Connections puzzle files.

Directories are searched for .json, .yaml, .yml and .toml files.
Each file is reported as OK or with its first problem; the command
fails if any file is invalid.

Examples:
  wordplay validate ./puzzles
  wordplay validate mini.json daily.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	files, err := collectPuzzleFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no puzzle files found (supported: %v)", formats.Extensions())
	}

	bad := 0
	for _, path := range files {
		if err := validateFile(path); err != nil {
			bad++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("OK    %s\n", path)
	}

	fmt.Println()
	fmt.Printf("%d file(s) checked, %d invalid\n", len(files), bad)
	if bad > 0 {
		return errInvalid
	}
	return nil
}

func validateFile(path string) error {
	doc, err := puzzles.LoadFile(path)
	if err != nil {
		return err
	}
	return puzzles.Validate(doc)
}

// collectPuzzleFiles expands directories into the supported files they hold.
func collectPuzzleFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && formats.Supported(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
