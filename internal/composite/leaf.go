package composite

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// LeafOptions configures a Leaf.
type LeafOptions struct {
	Pos core.Vec2
	Vel core.Vec2 // cells per second

	// Bounds wraps the position onto a torus per axis. A zero component
	// leaves that axis unbounded.
	Bounds core.Vec2

	// Key selects the shared look. With a nil Cache the leaf falls back to a
	// plain rectangle of Key.Size in Key.Color.
	Key   flyweight.Key
	Cache *flyweight.Cache

	Alpha uint8 // 0 is treated as fully opaque

	// Twinkle is the largest random alpha change per update; 0 disables it.
	// Alpha then drifts within [MinAlpha, 255]. Rand must be set to enable it.
	Twinkle  int
	MinAlpha uint8
	Rand     *rand.Rand
}

// Leaf is a terminal node carrying its own extrinsic state.
type Leaf struct {
	Toggles
	pos      core.Vec2
	vel      core.Vec2
	bounds   core.Vec2
	key      flyweight.Key
	cache    *flyweight.Cache
	alpha    uint8
	twinkle  int
	minAlpha uint8
	rng      *rand.Rand
}

// NewLeaf creates a leaf from opts.
func NewLeaf(opts LeafOptions) *Leaf {
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 255
	}
	return &Leaf{
		pos:      opts.Pos,
		vel:      opts.Vel,
		bounds:   opts.Bounds,
		key:      opts.Key,
		cache:    opts.Cache,
		alpha:    alpha,
		twinkle:  opts.Twinkle,
		minAlpha: opts.MinAlpha,
		rng:      opts.Rand,
	}
}

// Update integrates velocity over dt, drifts alpha, then wraps the position.
// Negative dt integrates backwards.
func (l *Leaf) Update(dt float64) {
	l.pos = l.pos.Add(l.vel.Scale(dt))

	if l.twinkle > 0 && l.rng != nil {
		a := int(l.alpha) + l.rng.Intn(2*l.twinkle+1) - l.twinkle
		l.alpha = uint8(core.Clamp(a, int(l.minAlpha), 255))
	}

	l.pos.X = core.Wrap(l.pos.X, l.bounds.X)
	l.pos.Y = core.Wrap(l.pos.Y, l.bounds.Y)
}

// Draw renders the leaf at its current position.
// A key the cache rejects draws nothing.
func (l *Leaf) Draw(dst Surface) {
	if l.cache != nil {
		res, err := l.cache.Get(l.key)
		if err != nil {
			return
		}
		dst.DrawSprite(res, l.pos.X, l.pos.Y, l.alpha)
		return
	}

	size := l.key.Size
	if size <= 0 {
		return
	}
	x := int(math.Floor(l.pos.X)) - size
	y := int(math.Floor(l.pos.Y)) - size/2
	dst.FillRect(core.NewRect(x, y, 2*size, size), l.key.Color, l.alpha)
}

// Move adds the delta to the position directly.
func (l *Leaf) Move(dx, dy float64) {
	l.pos.X += dx
	l.pos.Y += dy
}

// Pos returns the current position.
func (l *Leaf) Pos() core.Vec2 {
	return l.pos
}

// SetPos places the leaf at p.
func (l *Leaf) SetPos(p core.Vec2) {
	l.pos = p
}

// Vel returns the current velocity.
func (l *Leaf) Vel() core.Vec2 {
	return l.vel
}

// SetVel replaces the velocity.
func (l *Leaf) SetVel(v core.Vec2) {
	l.vel = v
}

// SetBounds changes the wrap bounds, e.g. after a resize.
func (l *Leaf) SetBounds(b core.Vec2) {
	l.bounds = b
}

// Alpha returns the current opacity.
func (l *Leaf) Alpha() uint8 {
	return l.alpha
}

// Key returns the leaf's shared-look key.
func (l *Leaf) Key() flyweight.Key {
	return l.key
}
