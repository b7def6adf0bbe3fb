// Package decorator implements the Decorator demo: a runner collects power-ups
// that wrap the hero in timed layers, each changing one answer (speed, jump,
// damage) and peeling off again when it runs out.
package decorator

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-patterns/internal/composite"
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
	"github.com/vovakirdan/tui-patterns/internal/registry"
)

// moveHold is how long one arrow press keeps the hero running, in seconds.
const moveHold = 0.15

const (
	pickupScore = 10
	hazardCost  = 5
	barWidth    = 16
)

var hazardColor = core.NewRGB(235, 80, 70)

// power is the kind of effect a pickup grants.
type power int

const (
	powerSpeed power = iota
	powerJump
	powerShield
	powerCount
)

type pickup struct {
	leaf  *composite.Leaf
	power power
}

// Demo implements the decorator runner.
type Demo struct {
	runtime  core.RuntimeConfig
	cfg      config.DecoratorConfig
	cache    *flyweight.Cache
	hero     Character
	world    *composite.Group
	pickupsG *composite.Group
	hazardsG *composite.Group
	pickups  []pickup
	hazards  []*composite.Leaf
	rng      *rand.Rand
	groundY  int
	itemY    float64
	runDir   float64
	runHold  float64
	score    int
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

// New creates a new decorator demo instance.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "decorator"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Decorator Runner"
}

// Pattern returns the pattern the demo illustrates.
func (d *Demo) Pattern() string {
	return "Decorator"
}

// Reset builds a fresh level with an undecorated hero.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadDecorator(configPath)
	if err != nil {
		cfg = config.DefaultDecoratorConfig()
	}
	config.ApplyDecoratorDensity(&cfg, density)
	d.cfg = cfg

	w, h := runtime.ScreenW, runtime.ScreenH
	d.cache = flyweight.NewCache()
	d.rng = rand.New(rand.NewSource(runtime.Seed))
	d.groundY = h - max(1, cfg.Physics.GroundOffset)
	d.itemY = float64(d.groundY - 1)
	d.score = 0
	d.frames = 0
	d.paused = false
	d.runDir = 0
	d.runHold = 0

	key, err := cfg.Hero.Style.Key()
	if err != nil {
		key, _ = config.DefaultDecoratorConfig().Hero.Style.Key()
	}
	d.hero = NewHero(d.cache.MustGet(key), cfg.Physics, float64(w/8), d.itemY, float64(w), cfg.Hero.HP)

	d.pickups = d.pickups[:0]
	d.hazards = d.hazards[:0]
	d.pickupsG = composite.NewGroup()
	d.hazardsG = composite.NewGroup()
	d.world = composite.NewGroup(d.hazardsG, d.pickupsG)
	d.buildLevel()
}

// buildLevel scans evenly spread slots and drops a pickup or a hazard on some.
func (d *Demo) buildLevel() {
	wc := d.cfg.World
	x := max(d.runtime.ScreenW/4, 12)
	for range wc.Slots {
		if x >= d.runtime.ScreenW-2 {
			return
		}
		r := d.rng.Float64()
		switch {
		case r < wc.PickupChance:
			d.addPickup(float64(x), power(d.rng.Intn(int(powerCount))))
		case r < wc.PickupChance+wc.HazardChance:
			d.addHazard(float64(x))
		}
		x += 7 + d.rng.Intn(7)
	}
}

func (d *Demo) addPickup(x float64, p power) {
	leaf := composite.NewLeaf(composite.LeafOptions{
		Pos:   core.Vec2{X: x, Y: d.itemY},
		Key:   flyweight.NewKey(flyweight.ShapeCircle, 1, p.tint()),
		Cache: d.cache,
	})
	d.pickups = append(d.pickups, pickup{leaf: leaf, power: p})
	d.pickupsG.Add(leaf)
}

func (d *Demo) addHazard(x float64) {
	leaf := composite.NewLeaf(composite.LeafOptions{
		Pos:   core.Vec2{X: x, Y: d.itemY},
		Key:   flyweight.NewKey(flyweight.ShapeRect, 1, hazardColor),
		Cache: d.cache,
	})
	d.hazards = append(d.hazards, leaf)
	d.hazardsG.Add(leaf)
}

func (p power) tint() core.RGB {
	switch p {
	case powerSpeed:
		return core.ColorGold
	case powerJump:
		return core.ColorPlum
	default:
		return core.ColorCyan
	}
}

// grant wraps the hero in the effect for p.
func (d *Demo) grant(p power) {
	e := d.cfg.Effects
	switch p {
	case powerSpeed:
		d.hero = NewSpeedBoost(d.hero, e.SpeedDuration, e.SpeedMultiplier)
	case powerJump:
		d.hero = NewJumpBoost(d.hero, e.JumpDuration, e.JumpBonus)
	case powerShield:
		d.hero = NewShield(d.hero, e.ShieldDuration)
	}
}

// itemRect is the cell footprint of a size-1 item sprite.
func itemRect(l *composite.Leaf) core.Rect {
	p := l.Pos()
	return core.NewRect(int(p.X)-1, int(p.Y), 2, 1)
}

// Step advances the run by one tick.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if d.hero.HP() <= 0 {
		if in.Has(core.ActionConfirm) {
			d.Reset(d.runtime)
		}
		return core.StepResult{State: d.State()}
	}

	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused {
		return core.StepResult{State: d.State()}
	}

	dt := d.runtime.Dt()

	for i, a := range []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3} {
		if in.Has(a) {
			d.grant(power(i))
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

	jump := in.Has(core.ActionJump) || in.Has(core.ActionUp)
	Advance(d.hero, dt, d.runDir, jump)

	d.collide()
	d.hero = StripExpired(d.hero)
	d.respawn()

	d.frames++
	return core.StepResult{State: d.State()}
}

// collide applies every item the hero touches this tick.
func (d *Demo) collide() {
	hb := d.hero.Bounds()

	kept := d.pickups[:0]
	for _, p := range d.pickups {
		if hb.Intersects(itemRect(p.leaf)) {
			d.grant(p.power)
			d.score += pickupScore
			d.pickupsG.Remove(p.leaf)
			continue
		}
		kept = append(kept, p)
	}
	d.pickups = kept

	keptH := d.hazards[:0]
	for _, hz := range d.hazards {
		if hb.Intersects(itemRect(hz)) {
			d.hero.Damage(1)
			d.score = max(0, d.score-hazardCost)
			d.hazardsG.Remove(hz)
			continue
		}
		keptH = append(keptH, hz)
	}
	d.hazards = keptH
}

// respawn occasionally drops a new item away from the hero.
func (d *Demo) respawn() {
	wc := d.cfg.World
	w := d.runtime.ScreenW
	if w < 16 {
		return
	}
	spot := func() (float64, bool) {
		x := float64(7 + d.rng.Intn(w-14))
		if d.hero.Bounds().Inflate(4, 0).Contains(int(x), int(d.itemY)) {
			return 0, false
		}
		return x, true
	}
	if len(d.pickups) < wc.MaxPickups && d.rng.Float64() < wc.PickupRespawn {
		if x, ok := spot(); ok {
			d.addPickup(x, power(d.rng.Intn(int(powerCount))))
		}
	}
	if len(d.hazards) < wc.MaxHazards && d.rng.Float64() < wc.HazardRespawn {
		if x, ok := spot(); ok {
			d.addHazard(x)
		}
	}
}

// Render draws the ground, items, hero and HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	ground := core.NewRect(0, d.groundY, dst.Width(), dst.Height()-d.groundY)
	dst.FillRect(ground, '█', core.ColorGround, 255)
	dst.DrawHLine(0, d.groundY, dst.Width(), '▀', core.ColorHint)

	d.world.Draw(composite.ScreenSurface{Screen: dst})
	d.hero.Draw(dst)

	dst.DrawTextColored(1, 0, "Decorator: power-ups wrap the hero at runtime", core.ColorHUD)
	status := fmt.Sprintf("HP: %d   Score: %d   %s", d.hero.HP(), d.score, Describe(d.hero))
	dst.DrawTextColored(1, 1, status, core.ColorWhite)
	for i, e := range Effects(d.hero) {
		filled := int(float64(barWidth)*e.Remaining()/e.Duration() + 0.5)
		filled = core.Clamp(filled, 0, barWidth)
		label := fmt.Sprintf("%-7s", e.Name())
		dst.DrawTextColored(1, 2+i, label, e.Tint())
		dst.DrawHLine(9, 2+i, filled, '■', e.Tint())
		dst.DrawHLine(9+filled, 2+i, barWidth-filled, '·', core.ColorHint)
	}
	dst.DrawTextColored(1, dst.Height()-1, "Left/Right: move  Space: jump  1/2/3: speed/jump/shield  P: pause", core.ColorHint)

	switch {
	case d.hero.HP() <= 0:
		dst.DrawMessage("GAME OVER", "Enter: restart  Esc: back")
	case d.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	state := core.DemoState{Frames: d.frames, Paused: d.paused}
	if d.world != nil {
		state.Entities = composite.CountLeaves(d.world) + 1
	}
	if d.cache != nil {
		state.Shared = d.cache.Count()
	}
	return state
}

// Register the demo with the registry
func init() {
	registry.Register("decorator", func() registry.Demo {
		return New()
	})
}
