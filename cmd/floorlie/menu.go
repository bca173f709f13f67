package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorlie/floorlie/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive level picker",
	Long: `Start the interactive session: pick levels from a menu, play them,
open the editor, and review progress, all without leaving the TUI.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	gameCfg, rc, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if err := tui.RunSession(lvls, gameCfg, store, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
