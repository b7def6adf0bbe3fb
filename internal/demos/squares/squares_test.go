package squares

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
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

func squaresOf(d *Demo, cluster int) []*Square {
	var out []*Square
	for _, n := range d.clusters[cluster].Children() {
		out = append(out, n.(*Square))
	}
	return out
}

func TestResetBuildsClusters(t *testing.T) {
	d := newTestDemo(t, 1)
	cfg := config.DefaultSquaresConfig()

	if len(d.clusters) != cfg.Clusters.Count {
		t.Fatalf("len(clusters) = %d, expected %d", len(d.clusters), cfg.Clusters.Count)
	}
	if d.root.Len() != cfg.Clusters.Count {
		t.Errorf("root.Len() = %d, expected %d", d.root.Len(), cfg.Clusters.Count)
	}
	want := cfg.Clusters.Count * cfg.Clusters.Squares
	if got := d.State().Entities; got != want {
		t.Errorf("Entities = %d, expected %d", got, want)
	}
}

func TestAddRemoveChangesCountByOne(t *testing.T) {
	d := newTestDemo(t, 2)
	before := d.State().Entities

	d.Step(input(core.ActionAdd))
	if got := d.State().Entities; got != before+1 {
		t.Errorf("after add Entities = %d, expected %d", got, before+1)
	}

	d.Step(input(core.ActionRemove))
	d.Step(input(core.ActionRemove))
	if got := d.State().Entities; got != before-1 {
		t.Errorf("after two removes Entities = %d, expected %d", got, before-1)
	}
}

func TestRemoveDrainsFirstNonEmptyCluster(t *testing.T) {
	d := newTestDemo(t, 3)
	first := d.clusters[0].Len()
	second := d.clusters[1].Len()

	for range first + 1 {
		d.Step(input(core.ActionRemove))
	}

	if got := d.clusters[0].Len(); got != 0 {
		t.Errorf("cluster 1 Len() = %d, expected 0", got)
	}
	if got := d.clusters[1].Len(); got != second-1 {
		t.Errorf("cluster 2 Len() = %d, expected %d", got, second-1)
	}

	// Removing from an empty scene is a no-op.
	empty := newTestDemo(t, 3)
	for range 1000 {
		empty.Step(input(core.ActionRemove))
	}
	if got := empty.State().Entities; got != 0 {
		t.Errorf("Entities = %d after draining, expected 0", got)
	}
}

func TestArrowsMoveEverySquare(t *testing.T) {
	d := newTestDemo(t, 4)
	// Frozen and hidden clusters still move with the root.
	d.Step(input(core.ActionSlot2, core.ActionAltSlot3))

	var before []core.Vec2
	for i := range d.clusters {
		for _, s := range squaresOf(d, i) {
			before = append(before, s.Pos())
		}
	}

	d.Step(input(core.ActionRight))

	step := config.DefaultSquaresConfig().Movement.Step * 2
	j := 0
	for i := range d.clusters {
		for _, s := range squaresOf(d, i) {
			want := core.Wrap(before[j].X+step, 80)
			if got := s.Pos().X; got != want {
				t.Errorf("square %d X = %v, expected %v", j, got, want)
			}
			if got := s.Pos().Y; got != before[j].Y {
				t.Errorf("square %d Y = %v, expected unchanged %v", j, got, before[j].Y)
			}
			j++
		}
	}
}

func TestSquaresWrapAtEdges(t *testing.T) {
	d := newTestDemo(t, 5)
	for range 200 {
		d.Step(input(core.ActionLeft, core.ActionUp))
	}

	for i := range d.clusters {
		for _, s := range squaresOf(d, i) {
			p := s.Pos()
			if p.X < 0 || p.X >= 80 || p.Y < 0 || p.Y >= 24 {
				t.Fatalf("square escaped the screen: %+v", p)
			}
		}
	}
}

func TestFrozenClusterSkipsAnimation(t *testing.T) {
	d := newTestDemo(t, 6)
	d.Step(input(core.ActionSlot1))
	if d.clusters[0].Enabled() {
		t.Fatal("cluster 1 should be frozen after pressing 1")
	}

	for range 10 {
		d.Step(input(core.ActionRight))
	}

	for _, s := range squaresOf(d, 0) {
		if s.Squash() != 0 {
			t.Errorf("frozen square Squash() = %v, expected 0", s.Squash())
		}
	}
	for _, s := range squaresOf(d, 1) {
		if s.Squash() <= 0 {
			t.Errorf("active square Squash() = %v, expected > 0", s.Squash())
		}
	}

	d.Step(input(core.ActionSlot1))
	if !d.clusters[0].Enabled() {
		t.Error("pressing 1 again should unfreeze cluster 1")
	}
}

func TestHiddenClustersDrawNothing(t *testing.T) {
	d := newTestDemo(t, 7)
	d.Step(input(core.ActionAltSlot1, core.ActionAltSlot2, core.ActionAltSlot3))

	screen := core.NewScreen(80, 24)
	d.Render(screen)

	if strings.ContainsRune(screen.String(), flyweight.SpriteGlyph) {
		t.Error("hidden clusters still drew sprite cells")
	}
}

func TestSharedSpritesBoundedByColors(t *testing.T) {
	d := newTestDemo(t, 8)
	for range 20 {
		d.Step(input(core.ActionAdd))
	}
	d.Render(core.NewScreen(80, 24))

	colors := len(config.DefaultSquaresConfig().Square.Colors)
	if got := d.State().Shared; got == 0 || got > colors {
		t.Errorf("Shared = %d, expected between 1 and %d", got, colors)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() string {
		d := newTestDemo(t, 99)
		screen := core.NewScreen(80, 24)
		for i := range 60 {
			in := input(core.ActionDown)
			if i%7 == 0 {
				in.Set(core.ActionAdd)
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
