package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/floorlie/floorlie/internal/levels"
	"github.com/floorlie/floorlie/internal/platform/tui"
	"github.com/floorlie/floorlie/internal/storage"
)

var flagProgressPlain bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show level progress",
	Long: `Show attempts and completion state per level.

By default this opens an interactive table. Use --plain for
script-friendly text output.

Examples:
  floorlie progress
  floorlie progress --plain`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagProgressPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runProgress(cmd *cobra.Command, args []string) {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagProgressPlain {
		printPlainProgress(lvls, store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunProgressBoard(lvls, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing progress: %v\n", err)
		os.Exit(1)
	}
}

func printPlainProgress(lvls []levels.Level, store *storage.Store) {
	byID := map[string]storage.ProgressEntry{}
	if store != nil {
		if entries, err := store.AllProgress(); err == nil {
			for _, e := range entries {
				byID[e.LevelID] = e
			}
		}
	}

	completed := 0
	fmt.Printf("%-24s  %-8s  %s\n", "Level", "Attempts", "Done")
	for _, lvl := range lvls {
		row := byID[lvl.ID]
		done := ""
		if row.Completed {
			done = "yes"
			completed++
		}
		attempts := "-"
		if row.Attempts > 0 {
			attempts = fmt.Sprintf("%d", row.Attempts)
		}
		fmt.Printf("%-24s  %-8s  %s\n", lvl.Name, attempts, done)
	}
	fmt.Printf("\n%d of %d level(s) completed.\n", completed, len(lvls))
}
