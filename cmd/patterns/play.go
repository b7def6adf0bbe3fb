package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/demos/backdrop"
	"github.com/vovakirdan/tui-patterns/internal/demos/bridge"
	"github.com/vovakirdan/tui-patterns/internal/demos/decorator"
	"github.com/vovakirdan/tui-patterns/internal/demos/particles"
	"github.com/vovakirdan/tui-patterns/internal/demos/squares"
	"github.com/vovakirdan/tui-patterns/internal/platform/tui"
	"github.com/vovakirdan/tui-patterns/internal/registry"
	"github.com/vovakirdan/tui-patterns/internal/storage"
)

var (
	flagConfig  string
	flagDensity string
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo.

Common controls:
  P          - Pause
  Esc/B      - Back
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Demo controls:
  particles  Space: add batch  1-3: add preset  C: clear
  squares    Arrows: move all  +/-: add/remove  1-3: toggle cluster  Shift+1-3: hide cluster
  backdrop   Left/Right: move  Space: jump  L: load now
  decorator  Left/Right: move  Space: jump  1-3: grant speed/jump/shield  Enter: restart
  bridge     Left/Right: move  Space: jump  1-3: player renderer  Shift+1-3: NPC renderer

Density options:
  sparse  - Half the configured entity counts
  normal  - Counts as configured
  dense   - Double the configured entity counts

Examples:
  patterns play particles
  patterns play squares --density sparse
  patterns play backdrop --config ./my-backdrop.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	playCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

// configureDemo passes the --config and --density flags to the demo package
// and checks that a custom config file loads.
func configureDemo(demoID string) error {
	if _, err := config.ParseDensity(flagDensity); err != nil {
		return err
	}

	var err error
	switch demoID {
	case "particles":
		particles.SetConfigPath(flagConfig)
		particles.SetDensity(flagDensity)
		_, err = config.LoadParticles(flagConfig)
	case "squares":
		squares.SetConfigPath(flagConfig)
		squares.SetDensity(flagDensity)
		_, err = config.LoadSquares(flagConfig)
	case "backdrop":
		backdrop.SetConfigPath(flagConfig)
		backdrop.SetDensity(flagDensity)
		_, err = config.LoadBackdrop(flagConfig)
	case "decorator":
		decorator.SetConfigPath(flagConfig)
		decorator.SetDensity(flagDensity)
		_, err = config.LoadDecorator(flagConfig)
	case "bridge":
		bridge.SetConfigPath(flagConfig)
		bridge.SetDensity(flagDensity)
		_, err = config.LoadBridge(flagConfig)
	}
	return err
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	} else {
		logger.Debug("using default terminal size", "error", err)
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the sessions database, or returns nil so demos still run.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	demoID := args[0]

	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q, run 'patterns list' to see available demos", demoID)
	}

	if err := configureDemo(demoID); err != nil {
		return err
	}

	demo, err := registry.Create(demoID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting demo", "demo", demoID, "fps", flagFPS, "density", flagDensity)
	if err := tui.Run(demo, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
