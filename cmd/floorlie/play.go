package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorlie/floorlie/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  WASD/Arrows - Move
  M/Space     - Toggle the truth mask
  R           - Restart the attempt
  E           - Open the level in the editor
  Esc         - Back
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Longer mask, shorter cooldown, more free uses
  normal - Configured timers as-is
  hard   - Shorter mask, longer cooldown, fewer free uses
  fixed  - Ignore presets, use the config file exactly

Examples:
  floorlie play 01-first-steps
  floorlie play 03-leap-of-faith --difficulty hard
  floorlie play my-level --levels ./levels
  floorlie play 01-first-steps --config ./my-config.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	level, err := levelLoader().LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'floorlie list' to see available levels.")
		os.Exit(1)
	}

	gameCfg, rc, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	result, runErr := tui.RunPlay(level, gameCfg, store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}

	// Leave a short summary on the normal screen after the TUI exits.
	if result != nil {
		if result.Won {
			fmt.Printf("Completed %s in %.1fs with %d mask uses: %d star(s)\n",
				level.Name, result.Elapsed.Seconds(), result.MaskUsages, result.Stars)
		} else {
			fmt.Printf("Fell through %s after %.1fs. The floor was a lie.\n",
				level.Name, result.Elapsed.Seconds())
		}
	}
}
