// patterns is a terminal playground for structural design patterns.
//
// Usage:
//
//	patterns list              - List available demos
//	patterns play <demo>       - Run a demo
//	patterns menu              - Start menu to pick demos interactively
//	patterns serve             - Start SSH server for remote viewing
//	patterns stats [demo]      - Show recorded session statistics
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.patterns/sessions.db)
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/tui-patterns/internal/demos/backdrop"
	_ "github.com/vovakirdan/tui-patterns/internal/demos/bridge"
	_ "github.com/vovakirdan/tui-patterns/internal/demos/decorator"
	_ "github.com/vovakirdan/tui-patterns/internal/demos/particles"
	_ "github.com/vovakirdan/tui-patterns/internal/demos/squares"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "patterns"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "TUI Patterns - structural design patterns you can watch",
	Long: `TUI Patterns runs small animated scenes in your terminal, each one
built around a structural design pattern.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote viewing
  stats    - View recorded session statistics

Examples:
  patterns list
  patterns play particles
  patterns play squares --density dense
  patterns menu
  patterns serve --ssh :2222
  patterns stats particles`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.patterns/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
