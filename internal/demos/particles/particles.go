// Package particles implements the Flyweight demo: thousands of drifting
// particles that carry only position, velocity and opacity, while their
// sprites come from a small shared cache.
package particles

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-patterns/internal/composite"
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
	"github.com/vovakirdan/tui-patterns/internal/registry"
)

// Demo implements the particles simulation.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.ParticlesConfig
	styles  []flyweight.Key // resolved cfg.Styles
	cache   *flyweight.Cache
	root    *composite.Group
	rng     *rand.Rand
	frames  int
	paused  bool
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

// New creates a new particles demo instance.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "particles"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Flyweight Particles"
}

// Pattern returns the pattern the demo illustrates.
func (d *Demo) Pattern() string {
	return "Flyweight"
}

// Reset rebuilds the scene. The cache starts empty, so the shared count
// reflects only the styles in use after the reset.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadParticles(configPath)
	if err != nil {
		cfg = config.DefaultParticlesConfig()
	}
	config.ApplyParticlesDensity(&cfg, density)
	d.cfg = cfg

	d.styles = d.styles[:0]
	for _, s := range cfg.Styles {
		if k, err := s.Key(); err == nil {
			d.styles = append(d.styles, k)
		}
	}

	d.cache = flyweight.NewCache()
	d.root = composite.NewGroup()
	d.rng = rand.New(rand.NewSource(runtime.Seed))
	d.frames = 0
	d.paused = false

	d.spawnRandom(cfg.Spawn.Initial)
}

// Step advances the simulation by one tick.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused {
		return core.StepResult{State: d.State()}
	}

	switch {
	case in.Has(core.ActionClear):
		d.root = composite.NewGroup()
	case in.Has(core.ActionJump):
		d.spawnRandom(d.cfg.Spawn.Batch)
	}
	for i, a := range []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3} {
		if in.Has(a) && i < len(d.cfg.Presets) {
			d.spawnPreset(d.cfg.Presets[i], d.cfg.Spawn.PresetBatch)
		}
	}

	d.root.Update(d.runtime.Dt())
	d.frames++

	return core.StepResult{State: d.State()}
}

// spawnRandom adds n particles with random styles and drift.
func (d *Demo) spawnRandom(n int) {
	if len(d.styles) == 0 {
		return
	}
	m := d.cfg.Motion
	for range n {
		key := d.styles[d.rng.Intn(len(d.styles))]
		speed := d.uniform(m.MinSpeed, m.MaxSpeed)
		vel := core.Vec2{
			X: speed * 0.8 * d.sign() * d.rng.Float64(),
			Y: speed * 0.8 * d.sign() * d.rng.Float64(),
		}
		d.add(key, vel, d.spawnAlpha(m.SpawnAlpha))
	}
}

// spawnPreset adds n particles of one style.
func (d *Demo) spawnPreset(style, n int) {
	if len(d.styles) == 0 {
		return
	}
	m := d.cfg.Motion
	key := d.styles[style%len(d.styles)]
	for range n {
		speed := d.uniform(m.MinSpeed, m.MaxSpeed)
		vel := core.Vec2{X: d.uniform(-speed, speed), Y: d.uniform(-speed, speed)}
		d.add(key, vel, d.spawnAlpha(m.SpawnAlpha+10))
	}
}

func (d *Demo) add(key flyweight.Key, vel core.Vec2, alpha uint8) {
	w, h := float64(d.runtime.ScreenW), float64(d.runtime.ScreenH)
	// Cells are about twice as tall as wide.
	vel.Y *= 0.5
	d.root.Add(composite.NewLeaf(composite.LeafOptions{
		Pos:      core.Vec2{X: d.rng.Float64() * w, Y: d.rng.Float64() * h},
		Vel:      vel,
		Bounds:   core.Vec2{X: w, Y: h},
		Key:      key,
		Cache:    d.cache,
		Alpha:    alpha,
		Twinkle:  d.cfg.Motion.Twinkle,
		MinAlpha: uint8(core.Clamp(d.cfg.Motion.MinAlpha, 0, 255)),
		Rand:     d.rng,
	}))
}

func (d *Demo) uniform(lo, hi float64) float64 {
	return lo + d.rng.Float64()*(hi-lo)
}

func (d *Demo) sign() float64 {
	if d.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}

// spawnAlpha returns a random opacity in [lo, 255].
func (d *Demo) spawnAlpha(lo int) uint8 {
	lo = core.Clamp(lo, 1, 255)
	return uint8(lo + d.rng.Intn(256-lo))
}

// Render draws the particles and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	d.root.Draw(composite.ScreenSurface{Screen: dst})

	dst.DrawTextColored(1, 0, "Flyweight: particles share one sprite per (shape, size, color)", core.ColorHUD)
	status := fmt.Sprintf("Particles: %d   Flyweights in cache: %d   Tick: %d",
		d.root.Len(), d.cache.Count(), d.frames)
	dst.DrawTextColored(1, 1, status, core.ColorHint)
	dst.DrawTextColored(1, 2, "Space: random batch  1/2/3: preset batch  C: clear  P: pause", core.ColorHint)

	if d.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	state := core.DemoState{Frames: d.frames, Paused: d.paused}
	if d.root != nil {
		state.Entities = d.root.Len()
	}
	if d.cache != nil {
		state.Shared = d.cache.Count()
	}
	return state
}

// Register the demo with the registry
func init() {
	registry.Register("particles", func() registry.Demo {
		return New()
	})
}
