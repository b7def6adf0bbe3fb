package decorator

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-patterns/internal/composite"
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
)

func newTestDemo(t *testing.T, seed int64) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	d := New()
	d.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return d
}

// emptyLevel removes every item and stops respawns so a test can place its own.
func emptyLevel(d *Demo) {
	d.pickups = nil
	d.hazards = nil
	d.pickupsG = composite.NewGroup()
	d.hazardsG = composite.NewGroup()
	d.world = composite.NewGroup(d.hazardsG, d.pickupsG)
	d.cfg.World.PickupRespawn = 0
	d.cfg.World.HazardRespawn = 0
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func runRight(d *Demo, frames int) {
	for range frames {
		d.Step(input(core.ActionRight))
	}
}

func TestDemoMetadata(t *testing.T) {
	d := New()
	if d.ID() != "decorator" || d.Pattern() != "Decorator" || d.Title() == "" {
		t.Errorf("metadata = (%q, %q, %q)", d.ID(), d.Title(), d.Pattern())
	}
}

func TestPickupWrapsHero(t *testing.T) {
	d := newTestDemo(t, 1)
	emptyLevel(d)
	d.addPickup(float64(d.hero.Bounds().Right()+3), powerShield)

	runRight(d, 20)

	if got := Describe(d.hero); got != "Shield(Hero)" {
		t.Errorf("Describe() = %q, expected %q", got, "Shield(Hero)")
	}
	if d.score != pickupScore {
		t.Errorf("score = %d, expected %d", d.score, pickupScore)
	}
	if len(d.pickups) != 0 || d.pickupsG.Len() != 0 {
		t.Errorf("pickup still in the world: %d tracked, %d in group", len(d.pickups), d.pickupsG.Len())
	}
}

func TestHazardDamagesUnlessShielded(t *testing.T) {
	hp := config.DefaultDecoratorConfig().Hero.HP

	tests := []struct {
		name     string
		setup    []core.Action
		expected int
	}{
		{"bare hero", nil, hp - 1},
		{"shielded hero", []core.Action{core.ActionSlot3}, hp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDemo(t, 2)
			emptyLevel(d)
			d.addHazard(float64(d.hero.Bounds().Right() + 3))
			d.Step(input(tt.setup...))

			runRight(d, 20)

			if got := d.hero.HP(); got != tt.expected {
				t.Errorf("HP() = %d, expected %d", got, tt.expected)
			}
			if len(d.hazards) != 0 || d.hazardsG.Len() != 0 {
				t.Error("hazard should be consumed on contact")
			}
			if d.score != 0 {
				t.Errorf("score = %d, expected the penalty to stop at 0", d.score)
			}
		})
	}
}

func TestSlotKeysGrantEffects(t *testing.T) {
	d := newTestDemo(t, 3)
	d.Step(input(core.ActionSlot1))
	d.Step(input(core.ActionSlot2))

	if got := Describe(d.hero); got != "Jump(Speed(Hero))" {
		t.Errorf("Describe() = %q, expected %q", got, "Jump(Speed(Hero))")
	}
}

func TestEffectsWearOff(t *testing.T) {
	d := newTestDemo(t, 4)
	emptyLevel(d)
	d.Step(input(core.ActionSlot1))

	seconds := config.DefaultDecoratorConfig().Effects.SpeedDuration
	for range int(seconds*60) + 2 {
		d.Step(input())
	}
	if got := Describe(d.hero); got != "Hero" {
		t.Errorf("Describe() = %q after %vs, expected the boost gone", got, seconds)
	}
}

func TestGameOverWaitsForEnter(t *testing.T) {
	d := newTestDemo(t, 5)
	d.hero.Damage(100)
	frames := d.frames

	d.Step(input(core.ActionRight))
	if d.frames != frames {
		t.Errorf("frames = %d, expected the run frozen at %d", d.frames, frames)
	}

	screen := core.NewScreen(80, 24)
	d.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Render() should show GAME OVER")
	}

	d.Step(input(core.ActionConfirm))
	if d.hero.HP() != config.DefaultDecoratorConfig().Hero.HP || d.frames != 0 {
		t.Errorf("after Enter HP() = %d, frames = %d, expected a fresh run", d.hero.HP(), d.frames)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	d := newTestDemo(t, 6)
	d.Step(input(core.ActionPause))
	runRight(d, 10)

	if d.frames != 0 {
		t.Errorf("frames = %d while paused, expected 0", d.frames)
	}
	if !d.State().Paused {
		t.Error("State().Paused = false, expected true")
	}
}

func TestStateCountsItemsAndSprites(t *testing.T) {
	d := newTestDemo(t, 7)
	state := d.State()

	if expected := len(d.pickups) + len(d.hazards) + 1; state.Entities != expected {
		t.Errorf("Entities = %d, expected %d", state.Entities, expected)
	}
	// hero, three pickup tints and one hazard at most
	if state.Shared < 1 || state.Shared > 5 {
		t.Errorf("Shared = %d, expected between 1 and 5", state.Shared)
	}
}

func TestDemoDeterministic(t *testing.T) {
	run := func() (core.DemoState, string) {
		d := newTestDemo(t, 42)
		for i := range 600 {
			switch {
			case i%90 == 0:
				d.Step(input(core.ActionJump))
			case i%3 == 0:
				d.Step(input(core.ActionRight))
			default:
				d.Step(input())
			}
		}
		screen := core.NewScreen(80, 24)
		d.Render(screen)
		return d.State(), screen.String()
	}

	s1, out1 := run()
	s2, out2 := run()
	if s1 != s2 {
		t.Errorf("State() differs between runs: %+v vs %+v", s1, s2)
	}
	if out1 != out2 {
		t.Error("Render() differs between runs with the same seed")
	}
}

func TestRenderShowsChainAndBars(t *testing.T) {
	d := newTestDemo(t, 8)
	d.Step(input(core.ActionSlot1))

	screen := core.NewScreen(80, 24)
	d.Render(screen)

	if row := screen.Row(1); !strings.Contains(row, "Speed(Hero)") {
		t.Errorf("status row = %q, expected the decoration chain", row)
	}
	if row := screen.Row(2); !strings.Contains(row, "Speed") || !strings.ContainsRune(row, '■') {
		t.Errorf("effect row = %q, expected a Speed bar", row)
	}
}
