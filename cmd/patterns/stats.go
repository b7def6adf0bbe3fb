package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patterns/internal/registry"
	"github.com/vovakirdan/tui-patterns/internal/storage"
)

var flagClear bool

var statsCmd = &cobra.Command{
	Use:   "stats [demo]",
	Short: "Show recorded session statistics",
	Long: `Display aggregate statistics and the 10 most recent sessions for a demo.
Without a demo, prints one summary line per demo.

Examples:
  patterns stats
  patterns stats particles
  patterns stats squares --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded sessions (all demos if none given)")
}

func runStats(_ *cobra.Command, args []string) error {
	demoID := ""
	if len(args) == 1 {
		demoID = args[0]
		if !registry.Exists(demoID) {
			return fmt.Errorf("unknown demo %q, run 'patterns list' to see available demos", demoID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(demoID); err != nil {
			return err
		}
		fmt.Println("Sessions cleared.")
		return nil
	}

	if demoID == "" {
		return printAllStats(store)
	}
	return printDemoStats(store, demoID)
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllDemoStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %-8s  %-10s  %-6s  %-6s  %s\n", "Demo", "Sessions", "Frames", "Peak", "Shared", "Last run")
	fmt.Printf("  %-10s  %-8s  %-10s  %-6s  %-6s  %s\n", "----", "--------", "------", "----", "------", "--------")

	for _, info := range registry.List() {
		s, ok := all[info.ID]
		if !ok {
			fmt.Printf("  %-10s  %-8d  %-10s  %-6s  %-6s  %s\n", info.ID, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %-8d  %-10d  %-6d  %-6d  %s\n",
			info.ID, s.Sessions, s.TotalFrames, s.PeakEntities, s.MaxShared, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printDemoStats(store *storage.Store, demoID string) error {
	demo, err := registry.Create(demoID)
	if err != nil {
		return err
	}

	summary, err := store.DemoStats(demoID)
	if err != nil {
		return err
	}
	sessions, err := store.RecentSessions(demoID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Sessions - %s (%s)\n", demo.Title(), demo.Pattern())
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'patterns play %s' to record one.\n", demoID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "#", "Frames", "Peak", "Shared", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "-", "------", "----", "------", "----", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-8s  %s\n",
			i+1, s.Frames, s.PeakEntities, s.SharedResources,
			s.Duration.Round(100*time.Millisecond), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Total: %d sessions, %d frames, peak %d entities, at most %d shared sprites, avg %s\n",
		summary.Sessions, summary.TotalFrames, summary.PeakEntities, summary.MaxShared,
		summary.AvgDuration.Round(100*time.Millisecond))
	return nil
}
