// Package composite lets callers treat a single entity and a whole tree of entities
// the same way. Leaves and groups share the Node capability set; only groups can
// hold children.
package composite

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// ErrCapabilityMismatch is returned when a child operation targets a node that
// cannot hold children.
var ErrCapabilityMismatch = errors.New("composite: node cannot hold children")

// Surface is the drawing target handed down the tree on every Draw.
type Surface interface {
	// DrawSprite stamps a shared sprite centered on (x, y).
	DrawSprite(res *flyweight.Resource, x, y float64, alpha uint8)
	// FillRect paints a solid rectangle.
	FillRect(r core.Rect, c core.RGB, alpha uint8)
}

// Node is the capability set shared by leaves and groups.
type Node interface {
	// Update advances extrinsic state by dt seconds.
	Update(dt float64)
	// Draw renders the node onto dst.
	Draw(dst Surface)
	// Move displaces the node immediately, without integrating over time.
	Move(dx, dy float64)
	// Enabled reports whether a parent should forward Update.
	Enabled() bool
	// Visible reports whether a parent should forward Draw.
	Visible() bool
}

// Container is a Node that owns an ordered list of children.
type Container interface {
	Node
	Add(child Node)
	Remove(child Node)
	Children() []Node
	Len() int
}

// Toggles holds the enabled/visible flags. Embed it to satisfy the flag half of
// Node. The zero value is enabled and visible.
type Toggles struct {
	disabled bool
	hidden   bool
}

// Enabled reports whether updates are forwarded to this node.
func (t *Toggles) Enabled() bool {
	return !t.disabled
}

// Visible reports whether draws are forwarded to this node.
func (t *Toggles) Visible() bool {
	return !t.hidden
}

// SetEnabled turns update forwarding on or off.
func (t *Toggles) SetEnabled(on bool) {
	t.disabled = !on
}

// SetVisible turns draw forwarding on or off.
func (t *Toggles) SetVisible(on bool) {
	t.hidden = !on
}

// Add appends child to parent when parent is a Container.
// Otherwise it returns ErrCapabilityMismatch and changes nothing.
func Add(parent, child Node) error {
	c, ok := parent.(Container)
	if !ok {
		return fmt.Errorf("%w: add to %T", ErrCapabilityMismatch, parent)
	}
	c.Add(child)
	return nil
}

// Remove detaches child from parent when parent is a Container.
// Otherwise it returns ErrCapabilityMismatch and changes nothing.
func Remove(parent, child Node) error {
	c, ok := parent.(Container)
	if !ok {
		return fmt.Errorf("%w: remove from %T", ErrCapabilityMismatch, parent)
	}
	c.Remove(child)
	return nil
}

// Walk visits n and its descendants in pre-order, following insertion order.
// Flags are ignored; every node is visited.
func Walk(n Node, fn func(n Node, depth int)) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int)) {
	fn(n, depth)
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			walk(child, depth+1, fn)
		}
	}
}

// CountLeaves returns the number of non-container nodes under n, n included.
func CountLeaves(n Node) int {
	count := 0
	Walk(n, func(n Node, _ int) {
		if _, ok := n.(Container); !ok {
			count++
		}
	})
	return count
}

// ScreenSurface adapts a terminal cell buffer to Surface.
type ScreenSurface struct {
	Screen *core.Screen
}

// DrawSprite implements Surface.
func (s ScreenSurface) DrawSprite(res *flyweight.Resource, x, y float64, alpha uint8) {
	res.Draw(s.Screen, x, y, alpha)
}

// FillRect implements Surface.
func (s ScreenSurface) FillRect(r core.Rect, c core.RGB, alpha uint8) {
	s.Screen.FillRect(r, flyweight.SpriteGlyph, c, alpha)
}
