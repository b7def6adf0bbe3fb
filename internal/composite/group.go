package composite

import "reflect"

// Group forwards every operation to its children in insertion order.
// Later children draw over earlier ones; there is no z-sorting.
//
// A Group owns its children: a node must be added to at most one Group, and a
// Group must never be added below itself.
type Group struct {
	Toggles
	children []Node
}

// NewGroup creates a group holding the given children in order.
func NewGroup(children ...Node) *Group {
	g := &Group{}
	g.children = append(g.children, children...)
	return g
}

// Update forwards dt to every enabled child. Disabled children stay in the
// tree untouched.
func (g *Group) Update(dt float64) {
	for _, c := range g.children {
		if c.Enabled() {
			c.Update(dt)
		}
	}
}

// Draw forwards to every visible child.
func (g *Group) Draw(dst Surface) {
	for _, c := range g.children {
		if c.Visible() {
			c.Draw(dst)
		}
	}
}

// Move forwards the same delta to every child, regardless of flags.
func (g *Group) Move(dx, dy float64) {
	for _, c := range g.children {
		c.Move(dx, dy)
	}
}

// Add appends child to the end of the group.
func (g *Group) Add(child Node) {
	g.children = append(g.children, child)
}

// Remove deletes the first child equal to child. Pointer nodes match by
// identity, value nodes by content. Absent children are ignored.
func (g *Group) Remove(child Node) {
	for i, c := range g.children {
		if sameNode(c, child) {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return
		}
	}
}

// Children returns a copy of the child list.
func (g *Group) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// Last returns the most recently added child, or nil for an empty group.
func (g *Group) Last() Node {
	if len(g.children) == 0 {
		return nil
	}
	return g.children[len(g.children)-1]
}

// sameNode compares with == when both dynamic values allow it and falls back
// to deep equality for nodes holding slices, maps or funcs.
func sameNode(a, b Node) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
