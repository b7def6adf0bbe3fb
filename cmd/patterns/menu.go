package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patterns/internal/platform/tui"
	"github.com/vovakirdan/tui-patterns/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the playground with a demo picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
Esc inside a demo returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select demo
  Tab          - Session statistics
  Q            - Quit

Examples:
  patterns menu
  patterns menu --fps 30
  patterns menu --db ./sessions.db`,
	RunE: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db) and --density from play
	menuCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsStats {
			goBack, err := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := configureDemo(menuResult.DemoID); err != nil {
			return err
		}

		demo, err := registry.Create(menuResult.DemoID)
		if err != nil {
			logger.Error("cannot create demo", "demo", menuResult.DemoID, "error", err)
			continue
		}

		// Fresh seed for each run unless one was given
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(demo, store, runCfg, logger); err != nil {
			logger.Error("demo failed", "demo", menuResult.DemoID, "error", err)
		}
	}
}
