package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floorlie/floorlie/internal/editor"
	"github.com/floorlie/floorlie/internal/platform/tui"
)

var (
	flagEditNew string
	flagEditOut string
)

var editCmd = &cobra.Command{
	Use:   "edit <level>",
	Short: "Edit a level",
	Long: `Open a level in the editor, or create a new one with --new.

Editor controls:
  WASD/Arrows - Move the cursor
  1-5         - Place empty / real / fake / start / exit
  N           - Rename the level
  Ctrl+S      - Validate and save
  Esc         - Back
  Q/Ctrl+C    - Quit

A level must have exactly one start and one exit to save.

Examples:
  floorlie edit 01-first-steps --levels ./levels
  floorlie edit my-level --new 9x6
  floorlie edit my-level --new 9x6 --out ./levels/my-level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditNew, "new", "", "Create a new level with the given WxH size (e.g. 9x6)")
	editCmd.Flags().StringVar(&flagEditOut, "out", "", "Output file path (defaults to the loaded file or <id>.yaml)")
}

func runEdit(cmd *cobra.Command, args []string) {
	levelID := args[0]

	var ed *editor.Editor
	savePath := flagEditOut

	if flagEditNew != "" {
		w, h, err := parseSize(flagEditNew)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ed = editor.New(levelID, levelID, w, h)
		if savePath == "" {
			savePath = levelID + ".yaml"
		}
	} else {
		level, err := levelLoader().LoadByID(levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Use --new WxH to create a new level.")
			os.Exit(1)
		}
		ed, err = editor.FromLevel(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if savePath == "" {
			if level.FilePath != "" {
				savePath = level.FilePath
			} else if flagLevelsDir != "" {
				savePath = filepath.Join(flagLevelsDir, levelID+".yaml")
			} else {
				savePath = levelID + ".yaml"
			}
		}
	}

	_, rc, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.RunEditor(ed, savePath, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}

	if ed.Dirty() {
		fmt.Println("Exited with unsaved changes.")
	}
}

// parseSize parses a WxH size string like "9x6".
func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH like 9x6", s)
	}
	var w, h int
	if _, err := fmt.Sscanf(parts[0], "%d", &w); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &h); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}
