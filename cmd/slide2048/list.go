package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/games/t2048"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every registered variant with its board size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := t2048.CurrentConfig()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range t2048.Variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, v := range t2048.Variants {
		size := v.Apply(cfg).Board.Size
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", size, size), v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'slide2048 play <id>' to play a game.")
}
