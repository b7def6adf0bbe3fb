// Package bridge implements the Bridge demo: players and NPCs (the abstraction)
// move the same way whichever RenderAPI (the implementation) draws them, and
// either side can be swapped at runtime.
package bridge

import (
	"fmt"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/registry"
)

// moveHold is how long one arrow press keeps the player accelerating, in seconds.
const moveHold = 0.15

// Demo implements the bridge scene.
type Demo struct {
	runtime   core.RuntimeConfig
	cfg       config.BridgeConfig
	renderers []RenderAPI
	player    *Player
	npcs      []*NPC
	groundY   int
	runDir    float64
	runHold   float64
	frames    int
	paused    bool
}

// configPath stores the custom config path set via CLI
var configPath string
var density = config.DensityNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDensity sets the density preset. Unknown names fall back to normal.
func SetDensity(preset string) {
	p, err := config.ParseDensity(preset)
	if err != nil {
		p = config.DensityNormal
	}
	density = p
}

// New creates a new bridge demo instance.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "bridge"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Bridge Renderers"
}

// Pattern returns the pattern the demo illustrates.
func (d *Demo) Pattern() string {
	return "Bridge"
}

// Reset places the player on the left with the solid renderer and the NPCs
// on the right with the outline renderer.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadBridge(configPath)
	if err != nil {
		cfg = config.DefaultBridgeConfig()
	}
	config.ApplyBridgeDensity(&cfg, density)
	d.cfg = cfg

	defaults := config.DefaultBridgeConfig()
	playerColor, err := config.ParseColor(cfg.Player)
	if err != nil {
		playerColor, _ = config.ParseColor(defaults.Player)
	}
	npcColor, err := config.ParseColor(cfg.NPC)
	if err != nil {
		npcColor, _ = config.ParseColor(defaults.NPC)
	}

	d.renderers = []RenderAPI{SolidRenderer{}, OutlineRenderer{}, GlowRenderer{Layers: 3}}
	d.frames = 0
	d.paused = false
	d.runDir = 0
	d.runHold = 0

	w := float64(runtime.ScreenW)
	d.groundY = runtime.ScreenH - max(1, cfg.Physics.GroundOffset)
	floorY := float64(d.groundY - 1)

	d.player = NewPlayer(w/6, floorY, w, playerColor, d.renderers[0], cfg.Physics, cfg.Friction)

	d.npcs = d.npcs[:0]
	n := cfg.Patrol.NPCs
	for i := range n {
		center := w * float64(i+3) / float64(n+3)
		npc := NewNPC(center, floorY, w, npcColor, d.renderers[1], cfg.Physics, cfg.Patrol, 1.3*float64(i))
		d.npcs = append(d.npcs, npc)
	}
}

// Step advances the scene by one tick.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused {
		return core.StepResult{State: d.State()}
	}

	dt := d.runtime.Dt()

	for i, a := range []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3} {
		if in.Has(a) {
			d.player.SetRenderer(d.renderers[i])
		}
	}
	for i, a := range []core.Action{core.ActionAltSlot1, core.ActionAltSlot2, core.ActionAltSlot3} {
		if in.Has(a) {
			for _, npc := range d.npcs {
				npc.SetRenderer(d.renderers[i])
			}
		}
	}

	if dx, _ := in.Direction(); dx != 0 {
		d.runDir = dx
		d.runHold = moveHold
	}
	if d.runHold <= 0 {
		d.runDir = 0
	}
	d.runHold = max(0, d.runHold-dt)

	d.player.Update(dt, d.runDir, in.Has(core.ActionJump) || in.Has(core.ActionUp))
	for _, npc := range d.npcs {
		npc.Update(dt)
	}

	d.frames++
	return core.StepResult{State: d.State()}
}

// Render draws the ground, the actors and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	ground := core.NewRect(0, d.groundY, dst.Width(), dst.Height()-d.groundY)
	dst.FillRect(ground, '█', core.ColorGround, 255)
	dst.DrawHLine(0, d.groundY, dst.Width(), '▀', core.ColorHint)

	for _, npc := range d.npcs {
		npc.Draw(dst)
	}
	d.player.Draw(dst)

	dst.DrawTextColored(1, 0, "Bridge: Actor (Player/NPC) x RenderAPI (Solid/Outline/Glow)", core.ColorHUD)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Player renderer: %-8s (1 Solid, 2 Outline, 3 Glow)", d.player.Renderer().Name()), core.ColorWhite)
	npcName := "-"
	if len(d.npcs) > 0 {
		npcName = d.npcs[0].Renderer().Name()
	}
	dst.DrawTextColored(1, 2, fmt.Sprintf("NPC renderer:    %-8s (! Solid, @ Outline, # Glow)", npcName), core.ColorWhite)
	dst.DrawTextColored(1, dst.Height()-1, "Left/Right: move  Space: jump  P: pause", core.ColorHint)

	if d.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current demo state. Shared counts the renderers in use.
func (d *Demo) State() core.DemoState {
	state := core.DemoState{Frames: d.frames, Paused: d.paused}
	if d.player == nil {
		return state
	}
	state.Entities = 1 + len(d.npcs)
	inUse := map[string]bool{d.player.Renderer().Name(): true}
	for _, npc := range d.npcs {
		inUse[npc.Renderer().Name()] = true
	}
	state.Shared = len(inUse)
	return state
}

// Register the demo with the registry
func init() {
	registry.Register("bridge", func() registry.Demo {
		return New()
	})
}
