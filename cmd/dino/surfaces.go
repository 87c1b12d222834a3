package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/registry"
)

var surfacesCmd = &cobra.Command{
	Use:   "surfaces",
	Short: "List all available display surfaces",
	Long:  `Shows a list of all display/input surfaces the game can run on.`,
	Run:   runSurfaces,
}

func runSurfaces(cmd *cobra.Command, args []string) {
	surfaces := registry.List()

	if len(surfaces) == 0 {
		fmt.Println("No surfaces available.")
		return
	}

	fmt.Println("Available surfaces:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range surfaces {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range surfaces {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'dino play --surface <id>' to use a surface.")
}
