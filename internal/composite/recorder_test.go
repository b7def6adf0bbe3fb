package composite

import (
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// drawCall is one primitive recorded by recordingSurface.
type drawCall struct {
	sprite *flyweight.Resource // nil for FillRect
	rect   core.Rect
	color  core.RGB
	x, y   float64
	alpha  uint8
}

// recordingSurface captures draw primitives in call order.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawSprite(res *flyweight.Resource, x, y float64, alpha uint8) {
	s.calls = append(s.calls, drawCall{sprite: res, x: x, y: y, alpha: alpha})
}

func (s *recordingSurface) FillRect(r core.Rect, c core.RGB, alpha uint8) {
	s.calls = append(s.calls, drawCall{rect: r, color: c, alpha: alpha})
}

// countingNode counts forwarded calls.
type countingNode struct {
	Toggles
	updates int
	draws   int
	moves   int
}

func (n *countingNode) Update(float64)        { n.updates++ }
func (n *countingNode) Draw(Surface)          { n.draws++ }
func (n *countingNode) Move(float64, float64) { n.moves++ }

func disabled(n *countingNode) *countingNode {
	n.SetEnabled(false)
	return n
}

func hidden(n *countingNode) *countingNode {
	n.SetVisible(false)
	return n
}

// pathNode is a value node whose dynamic type cannot be compared with ==.
type pathNode struct {
	pts []float64
}

func (n pathNode) Update(float64)        {}
func (n pathNode) Draw(Surface)          {}
func (n pathNode) Move(float64, float64) {}
func (n pathNode) Enabled() bool         { return true }
func (n pathNode) Visible() bool         { return true }
