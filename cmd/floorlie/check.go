package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorlie/floorlie/internal/game"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse and validate one or more level files without playing them.

Checks that each file parses, that its rows are rectangular and match
the declared size, that every token is a known tile, and that there is
exactly one start and one exit.

Examples:
  floorlie check ./levels/my-level.yaml
  floorlie check ./levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	loader := levelLoader()
	failed := 0

	for _, path := range args {
		level, err := loader.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}

		if _, err := level.ToGrid(); err != nil {
			var ile *game.InvalidLevelError
			if errors.As(err, &ile) {
				fmt.Printf("FAIL  %s: [%s] %s\n", path, ile.Code, ile.Message)
			} else {
				fmt.Printf("FAIL  %s: %v\n", path, err)
			}
			failed++
			continue
		}

		fmt.Printf("OK    %s (%s, %dx%d)\n", path, level.ID, level.Width, level.Height)
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d file(s) failed validation.\n", failed, len(args))
		os.Exit(1)
	}
}
