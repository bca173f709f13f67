package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the builtin campaign plus any levels found in the --levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "----")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, l.ID, size, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'floorlie play <id>' to play a level.")
}
