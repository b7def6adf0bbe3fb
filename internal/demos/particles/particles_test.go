package particles

import (
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

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetSpawnsInitial(t *testing.T) {
	d := newTestDemo(t, 1)

	want := config.DefaultParticlesConfig().Spawn.Initial
	if got := d.State().Entities; got != want {
		t.Errorf("Entities = %d, expected %d", got, want)
	}
	if got := d.State().Shared; got != 0 {
		t.Errorf("Shared = %d before first draw, expected 0", got)
	}
}

func TestSharedBoundedByStyles(t *testing.T) {
	d := newTestDemo(t, 2)
	screen := core.NewScreen(80, 24)

	for range 5 {
		d.Step(input(core.ActionJump))
		d.Render(screen)
	}

	shared := d.State().Shared
	if shared == 0 {
		t.Fatal("Shared = 0 after drawing, expected sprites to be cached")
	}
	if shared > len(d.styles) {
		t.Errorf("Shared = %d, expected at most %d styles", shared, len(d.styles))
	}
	if d.State().Entities <= shared {
		t.Errorf("Entities = %d should far exceed shared sprites %d", d.State().Entities, shared)
	}
}

func TestSpaceAddsBatch(t *testing.T) {
	d := newTestDemo(t, 3)
	before := d.State().Entities

	d.Step(input(core.ActionJump))

	want := before + config.DefaultParticlesConfig().Spawn.Batch
	if got := d.State().Entities; got != want {
		t.Errorf("Entities = %d, expected %d", got, want)
	}
}

func TestPresetSpawnsOneStyle(t *testing.T) {
	d := newTestDemo(t, 4)
	d.Step(input(core.ActionClear))
	if got := d.State().Entities; got != 0 {
		t.Fatalf("Entities after clear = %d, expected 0", got)
	}

	d.Step(input(core.ActionSlot2))

	cfg := config.DefaultParticlesConfig()
	if got := d.State().Entities; got != cfg.Spawn.PresetBatch {
		t.Errorf("Entities = %d, expected %d", got, cfg.Spawn.PresetBatch)
	}
	want := d.styles[cfg.Presets[1]]
	for _, n := range d.root.Children() {
		if k := n.(*composite.Leaf).Key(); k != want {
			t.Errorf("preset particle key = %v, expected %v", k, want)
		}
	}
}

func TestClearKeepsCache(t *testing.T) {
	d := newTestDemo(t, 5)
	screen := core.NewScreen(80, 24)
	d.Render(screen)
	shared := d.State().Shared

	d.Step(input(core.ActionClear))

	if got := d.State().Shared; got != shared {
		t.Errorf("Shared after clear = %d, expected %d", got, shared)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	d := newTestDemo(t, 6)
	d.Step(input())
	d.Step(input(core.ActionPause))

	frames := d.State().Frames
	d.Step(input(core.ActionJump))
	if d.State().Frames != frames {
		t.Errorf("Frames advanced while paused: %d -> %d", frames, d.State().Frames)
	}
	if !d.State().Paused {
		t.Error("State().Paused = false, expected true")
	}

	d.Step(input(core.ActionPause))
	if d.State().Frames != frames+1 {
		t.Errorf("Frames = %d after unpause, expected %d", d.State().Frames, frames+1)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() string {
		d := newTestDemo(t, 42)
		screen := core.NewScreen(80, 24)
		for i := range 90 {
			in := input()
			if i%30 == 0 {
				in.Set(core.ActionSlot3)
			}
			d.Step(in)
		}
		d.Render(screen)
		return screen.String()
	}

	if a, b := run(), run(); a != b {
		t.Error("two runs with the same seed rendered different frames")
	}
}

func TestDensityScalesInitial(t *testing.T) {
	SetDensity("dense")
	t.Cleanup(func() { SetDensity("normal") })

	d := newTestDemo(t, 7)
	want := config.DefaultParticlesConfig().Spawn.Initial * 2
	if got := d.State().Entities; got != want {
		t.Errorf("dense Entities = %d, expected %d", got, want)
	}
}

func TestParticlesStayOnScreen(t *testing.T) {
	d := newTestDemo(t, 8)
	for range 600 {
		d.Step(input())
	}

	for _, n := range d.root.Children() {
		p := n.(*composite.Leaf).Pos()
		if p.X < 0 || p.X >= 80 || p.Y < 0 || p.Y >= 24 {
			t.Fatalf("particle escaped the screen: %+v", p)
		}
	}
}
