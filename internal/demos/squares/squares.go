// Package squares implements the Composite demo: clusters of squares nested
// in groups, steered as a single unit through the root group.
package squares

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-patterns/internal/composite"
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
	"github.com/vovakirdan/tui-patterns/internal/registry"
)

// Demo implements the squares scene.
type Demo struct {
	runtime  core.RuntimeConfig
	cfg      config.SquaresConfig
	colors   []core.RGB
	cache    *flyweight.Cache
	root     *composite.Group
	clusters []*composite.Group
	motion   Motion
	hold     float64 // seconds the scene keeps counting as moving
	rng      *rand.Rand
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

// New creates a new squares demo instance.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "squares"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Composite Squares"
}

// Pattern returns the pattern the demo illustrates.
func (d *Demo) Pattern() string {
	return "Composite"
}

// Reset rebuilds the cluster tree.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadSquares(configPath)
	if err != nil {
		cfg = config.DefaultSquaresConfig()
	}
	config.ApplySquaresDensity(&cfg, density)
	d.cfg = cfg

	d.colors = d.colors[:0]
	for _, hex := range cfg.Square.Colors {
		if c, err := config.ParseColor(hex); err == nil {
			d.colors = append(d.colors, c)
		}
	}
	if len(d.colors) == 0 {
		d.colors = append(d.colors, core.ColorWhite)
	}

	d.cache = flyweight.NewCache()
	d.rng = rand.New(rand.NewSource(runtime.Seed))
	d.motion = Motion{}
	d.hold = 0
	d.frames = 0
	d.paused = false

	w, h := float64(runtime.ScreenW), float64(runtime.ScreenH)
	d.root = composite.NewGroup()
	d.clusters = d.clusters[:0]
	for i := range cfg.Clusters.Count {
		cluster := composite.NewGroup()
		for range cfg.Clusters.Squares {
			cluster.Add(d.newSquare())
		}
		dx, dy := clusterOffset(i, w, h, d.rng)
		cluster.Move(dx, dy)
		d.root.Add(cluster)
		d.clusters = append(d.clusters, cluster)
	}
}

// clusterOffset spreads clusters over the screen. The first three sit at
// fixed offsets; any extra clusters land at random.
func clusterOffset(i int, w, h float64, rng *rand.Rand) (float64, float64) {
	switch i {
	case 0:
		return 0, 0
	case 1:
		return math.Floor(w / 3), math.Floor(h / 6)
	case 2:
		return math.Floor(w / 6), math.Floor(h / 3)
	default:
		return math.Floor(rng.Float64() * w * 2 / 3), math.Floor(rng.Float64() * h * 2 / 3)
	}
}

// newSquare places a square at random inside the top-left third of the screen.
func (d *Demo) newSquare() *Square {
	w, h := float64(d.runtime.ScreenW), float64(d.runtime.ScreenH)
	size := d.cfg.Square.Size
	areaW := max(0, int(w/3)-2*size)
	areaH := max(0, int(h/3)-size)

	pos := core.Vec2{
		X: float64(d.rng.Intn(areaW+1) + size),
		Y: float64(d.rng.Intn(areaH+1) + size/2),
	}
	color := d.colors[d.rng.Intn(len(d.colors))]
	key := flyweight.NewKey(flyweight.ShapeRect, size, color)
	phase := d.rng.Float64() * 2 * math.Pi

	return NewSquare(pos, core.Vec2{X: w, Y: h}, key, d.cache, &d.motion, d.cfg.Animation, phase)
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

	if dx, dy := in.Direction(); dx != 0 || dy != 0 {
		step := d.cfg.Movement.Step
		d.motion.Dir = core.Vec2{X: dx, Y: dy}.Normalized()
		// Cells are about twice as tall as wide.
		d.root.Move(dx*step*2, dy*step)
		d.hold = d.cfg.Movement.Hold
	}
	d.motion.Moving = d.hold > 0
	if !d.motion.Moving {
		d.motion.Dir = core.Vec2{}
	}
	d.hold = max(0, d.hold-dt)

	if in.Has(core.ActionAdd) {
		d.addSquare()
	}
	if in.Has(core.ActionRemove) {
		d.removeSquare()
	}

	toggles := []struct {
		enable, show core.Action
	}{
		{core.ActionSlot1, core.ActionAltSlot1},
		{core.ActionSlot2, core.ActionAltSlot2},
		{core.ActionSlot3, core.ActionAltSlot3},
	}
	for i, tg := range toggles {
		if i >= len(d.clusters) {
			break
		}
		c := d.clusters[i]
		if in.Has(tg.enable) {
			c.SetEnabled(!c.Enabled())
		}
		if in.Has(tg.show) {
			c.SetVisible(!c.Visible())
		}
	}

	d.root.Update(dt)
	d.frames++

	return core.StepResult{State: d.State()}
}

// addSquare adds a square to a random cluster.
func (d *Demo) addSquare() {
	if len(d.clusters) == 0 {
		return
	}
	c := d.clusters[d.rng.Intn(len(d.clusters))]
	c.Add(d.newSquare())
}

// removeSquare removes the newest square of the first non-empty cluster.
func (d *Demo) removeSquare() {
	for _, c := range d.clusters {
		if last := c.Last(); last != nil {
			c.Remove(last)
			return
		}
	}
}

// Render draws the clusters and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	d.root.Draw(composite.ScreenSurface{Screen: dst})

	dst.DrawTextColored(1, 0, "Composite: arrows move ALL squares through the root group, wrapping at the edges", core.ColorHUD)
	dst.DrawTextColored(1, 1, "+/-: add/remove  1/2/3: freeze cluster  !/@/#: hide cluster  P: pause", core.ColorHint)

	parts := make([]string, 0, len(d.clusters))
	for i, c := range d.clusters {
		state := "on"
		switch {
		case !c.Visible():
			state = "hidden"
		case !c.Enabled():
			state = "frozen"
		}
		parts = append(parts, fmt.Sprintf("%d:%d %s", i+1, c.Len(), state))
	}
	status := fmt.Sprintf("Squares: %d   Clusters [%s]   Sprites: %d",
		composite.CountLeaves(d.root), strings.Join(parts, "  "), d.cache.Count())
	dst.DrawTextColored(1, 2, status, core.ColorHint)

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
	registry.Register("squares", func() registry.Demo {
		return New()
	})
}
