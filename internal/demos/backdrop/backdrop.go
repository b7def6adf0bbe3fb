// Package backdrop implements the virtual proxy demo: a runner plays in front
// of a background that starts as a cheap placeholder and swaps to the real,
// expensive texture once it is ready.
package backdrop

import (
	"fmt"

	"github.com/vovakirdan/tui-patterns/internal/composite"
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
	"github.com/vovakirdan/tui-patterns/internal/registry"
)

// moveHold is how long one arrow press keeps the runner moving, in seconds.
// Terminals report key presses, not held keys.
const moveHold = 0.15

// Demo implements the backdrop scene.
type Demo struct {
	runtime  core.RuntimeConfig
	cfg      config.BackdropConfig
	backdrop Texture
	waited   float64 // seconds spent before the backdrop was ready
	cache    *flyweight.Cache
	root     *composite.Group
	runner   *composite.Leaf
	groundY  int
	floorY   float64 // runner center on the ground
	onGround bool
	runDir   float64
	runHold  float64
	loadedAt int // frame the backdrop finished loading, -1 while pending
	frames   int
	paused   bool
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

// New creates a new backdrop demo instance.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "backdrop"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Proxy Backdrop"
}

// Pattern returns the pattern the demo illustrates.
func (d *Demo) Pattern() string {
	return "Proxy"
}

// Reset starts over with an unloaded backdrop.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadBackdrop(configPath)
	if err != nil {
		cfg = config.DefaultBackdropConfig()
	}
	config.ApplyBackdropDensity(&cfg, density)
	d.cfg = cfg

	w, h := runtime.ScreenW, runtime.ScreenH
	d.backdrop = NewProxyTexture(w, h, cfg.Proxy.Stars, runtime.Seed, cfg.Proxy.LoadDelay)
	d.waited = 0
	d.cache = flyweight.NewCache()
	d.loadedAt = -1
	d.frames = 0
	d.paused = false
	d.runDir = 0
	d.runHold = 0

	key, err := cfg.Runner.Key()
	if err != nil {
		key, _ = config.DefaultBackdropConfig().Runner.Key()
	}
	d.groundY = h - max(1, cfg.Physics.GroundOffset)
	// Rest the sprite's bottom row on the row above the ground.
	d.floorY = float64(d.groundY - (key.Size - key.Size/2))

	d.runner = composite.NewLeaf(composite.LeafOptions{
		Pos:    core.Vec2{X: float64(w / 4), Y: d.floorY},
		Bounds: core.Vec2{X: float64(w)},
		Key:    key,
		Cache:  d.cache,
	})
	d.onGround = true
	d.root = composite.NewGroup(d.runner)
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
	phys := d.cfg.Physics

	if in.Has(core.ActionLoad) {
		d.backdrop.Load()
	}
	d.backdrop.Update(dt)
	if d.backdrop.Loaded() {
		if d.loadedAt < 0 {
			d.loadedAt = d.frames
		}
	} else {
		d.waited += dt
	}

	if dx, _ := in.Direction(); dx != 0 {
		d.runDir = dx
		d.runHold = moveHold
	}
	if d.runHold <= 0 {
		d.runDir = 0
	}
	d.runHold = max(0, d.runHold-dt)

	vel := d.runner.Vel()
	vel.X = d.runDir * phys.MoveSpeed
	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && d.onGround {
		vel.Y = -phys.JumpPower
		d.onGround = false
	}
	vel.Y += phys.Gravity * dt
	d.runner.SetVel(vel)

	d.root.Update(dt)

	if pos := d.runner.Pos(); pos.Y >= d.floorY {
		d.runner.SetPos(core.Vec2{X: pos.X, Y: d.floorY})
		d.runner.SetVel(core.Vec2{X: vel.X})
		d.onGround = true
	}

	d.frames++
	return core.StepResult{State: d.State()}
}

// Render draws the backdrop, ground, runner and HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	d.backdrop.Draw(dst)

	ground := core.NewRect(0, d.groundY, dst.Width(), dst.Height()-d.groundY)
	dst.FillRect(ground, '█', core.ColorGround, 255)
	dst.DrawHLine(0, d.groundY, dst.Width(), '▀', core.ColorHint)

	d.root.Draw(composite.ScreenSurface{Screen: dst})

	status := fmt.Sprintf("Proxy: loading... %.1fs / %.1fs", d.waited, d.cfg.Proxy.LoadDelay)
	if d.backdrop.Loaded() {
		status = fmt.Sprintf("Proxy: real backdrop loaded at tick %d (no frame blocked)", d.loadedAt)
	}
	dst.DrawTextColored(2, dst.Height()-2, status, core.ColorWhite)
	dst.DrawTextColored(2, dst.Height()-1, "Left/Right: move  Space: jump  L: load now  P: pause", core.ColorHint)

	if d.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	state := core.DemoState{Frames: d.frames, Paused: d.paused}
	if d.root != nil {
		state.Entities = composite.CountLeaves(d.root)
	}
	if d.cache != nil {
		state.Shared = d.cache.Count()
	}
	return state
}

// Register the demo with the registry
func init() {
	registry.Register("backdrop", func() registry.Demo {
		return New()
	})
}
