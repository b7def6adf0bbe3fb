package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/registry"
	"github.com/vovakirdan/tui-patterns/internal/storage"
)

// DemoModel is the Bubble Tea model for running one pattern demo.
// It records a session summary when the run ends.
type DemoModel struct {
	demo       registry.Demo
	screen     *core.Screen
	renderer   *Renderer
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	demoState  core.DemoState
	keyMapper  *KeyMapper
	standalone bool // Back quits the program instead of returning to a menu

	started    time.Time
	frames     int
	peak       int
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewDemoModel creates a demo model. A nil logger uses the default logger;
// a nil renderer renders for the local terminal.
func NewDemoModel(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig, renderer *Renderer, logger *log.Logger) DemoModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = NewRenderer(nil, core.ColorBackground)
	}
	if logger == nil {
		logger = log.Default()
	}

	return DemoModel{
		demo:       demo,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   renderer,
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		started:    time.Now(),
	}
}

// Init initializes the demo and starts the tick loop.
func (m DemoModel) Init() tea.Cmd {
	m.demo.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.recordSession()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.recordSession()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m DemoModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Wrap bounds and layout depend on the screen size, so the scene restarts.
	m.demo.Reset(m.config)
	m.demoState = m.demo.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m DemoModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.demo.Step(m.inputFrame)
	if !result.State.Paused {
		m.frames++
	}
	m.demoState = result.State
	m.peak = max(m.peak, result.State.Entities)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordSession stores a summary of the run once. Failures are logged and
// never interrupt the demo.
func (m *DemoModel) recordSession() {
	if m.saved || m.store == nil || m.frames == 0 {
		return
	}
	m.saved = true

	rec := storage.SessionRecord{
		DemoID:          m.demo.ID(),
		Frames:          m.frames,
		PeakEntities:    m.peak,
		SharedResources: m.demoState.Shared,
		Duration:        time.Since(m.started),
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "demo", rec.DemoID, "error", err)
		return
	}
	m.logger.Debug("session saved", "demo", rec.DemoID, "frames", rec.Frames, "peak", rec.PeakEntities)
}

// saveScreenshot saves the current screen to a file.
func (m *DemoModel) saveScreenshot() {
	m.demo.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".patterns", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.demo.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m DemoModel) View() string {
	if m.quitting {
		return ""
	}

	m.demo.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the last reported demo state.
func (m DemoModel) State() core.DemoState {
	return m.demoState
}

// IsQuitting returns true if user requested to quit entirely.
func (m DemoModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m DemoModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single demo.
func Run(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewDemoModel(demo, store, cfg, nil, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
