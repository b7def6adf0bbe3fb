package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patterns/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in the playground.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, d := range demos {
		maxIDLen = max(maxIDLen, len(d.ID))
		maxTitleLen = max(maxTitleLen, len(d.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Pattern")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	for _, d := range demos {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, d.ID, maxTitleLen, d.Title, d.Pattern)
	}

	fmt.Println()
	fmt.Println("Run 'patterns play <id>' to start a demo.")
}
