// floorlie is a terminal puzzle game about floors that lie to you.
//
// Usage:
//
//	floorlie list              - List available levels
//	floorlie play <level>      - Play a level
//	floorlie menu              - Start the interactive level picker
//	floorlie edit <level>      - Edit a level (or create a new one)
//	floorlie check <file>      - Validate level files
//	floorlie progress          - Show level progress
//	floorlie serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--db <path>         - Set database path (default: ~/.floorlie/progress.db)
//	--levels <dir>      - Extra levels directory
//	--config <path>     - Path to custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/floorlie/floorlie/internal/config"
	"github.com/floorlie/floorlie/internal/core"
	"github.com/floorlie/floorlie/internal/game"
	"github.com/floorlie/floorlie/internal/levels"
	"github.com/floorlie/floorlie/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floorlie",
	Short: "The Floor Is a Lie - a terminal puzzle about disguised tiles",
	Long: `The Floor Is a Lie is a terminal puzzle game. Cross a tiled floor
from start to exit, but some tiles are fakes wearing a solid disguise.
Toggle the truth mask to reveal them, sparingly: the mask runs out and
needs to cool down, and leaning on it costs stars.

Available commands:
  list      - Show all available levels
  play      - Play a specific level directly
  menu      - Interactive level picker
  edit      - Level editor
  check     - Validate level files
  progress  - View level progress
  serve     - Start SSH server for remote play

Examples:
  floorlie list
  floorlie play 01-first-steps
  floorlie menu
  floorlie edit my-level --new 9x6
  floorlie serve --ssh :2222
  floorlie progress`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floorlie/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra levels directory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the YAML config, applies the difficulty preset
// and returns both forms the platform needs.
func loadGameConfig() (game.Config, core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return game.Config{}, core.RuntimeConfig{}, err
	}

	if flagDifficulty != "" {
		if !config.ValidPreset(flagDifficulty) {
			return game.Config{}, core.RuntimeConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	rc := cfg.ToRuntime()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	// Size the screen from the terminal when possible.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	return cfg.ToGame(), rc, nil
}

// openStore opens the progress database, degrading to nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		return nil
	}
	return store
}

// levelLoader returns a loader over the builtin campaign plus the
// optional --levels directory.
func levelLoader() *levels.Loader {
	return levels.NewLoader(flagLevelsDir)
}
