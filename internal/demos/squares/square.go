package squares

import (
	"math"

	"github.com/vovakirdan/tui-patterns/internal/composite"
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// Motion is the steer state shared by every square in the scene.
// The demo writes it once per tick; squares only read it.
type Motion struct {
	Moving bool
	Dir    core.Vec2 // unit vector, zero when idle
}

// Square is a leaf that wraps on Move and animates squash, jitter and a
// fading trail while the scene is being steered.
type Square struct {
	composite.Toggles
	pos    core.Vec2
	bounds core.Vec2
	key    flyweight.Key
	cache  *flyweight.Cache
	motion *Motion
	anim   config.SquaresAnimation

	squash float64 // 0..1
	trail  float64 // 0..1
	phase  float64 // jitter phase in radians
	dir    core.Vec2
}

// NewSquare creates a square centered on pos.
func NewSquare(pos, bounds core.Vec2, key flyweight.Key, cache *flyweight.Cache, motion *Motion, anim config.SquaresAnimation, phase float64) *Square {
	return &Square{
		pos:    pos,
		bounds: bounds,
		key:    key,
		cache:  cache,
		motion: motion,
		anim:   anim,
		phase:  phase,
	}
}

// Move displaces the square and wraps it onto the screen.
func (s *Square) Move(dx, dy float64) {
	s.pos.X = core.Wrap(s.pos.X+dx, s.bounds.X)
	s.pos.Y = core.Wrap(s.pos.Y+dy, s.bounds.Y)
}

// Update eases the squash and trail toward the current steer state.
func (s *Square) Update(dt float64) {
	moving := s.motion != nil && s.motion.Moving
	target := 0.0
	if moving {
		target = 1
	}

	rate := s.anim.SlowDown
	if target > s.squash {
		rate = s.anim.SpeedUp
	}
	s.squash += (target - s.squash) * math.Min(1, rate*dt)
	s.trail += (target - s.trail) * math.Min(1, s.anim.SlowDown*dt)

	if moving {
		s.phase += 6 * dt
	} else {
		s.phase += dt
	}

	s.squash = core.ClampF(s.squash, 0, 1)
	s.trail = core.ClampF(s.trail, 0, 1)

	if s.motion != nil {
		s.dir = s.motion.Dir
	}
}

// Draw renders the trail as translucent stretched rectangles, then the
// shared body sprite on top.
func (s *Square) Draw(dst composite.Surface) {
	size := float64(s.key.Size)

	stretch := 0.25 * s.squash
	ax, ay := math.Abs(s.dir.X), math.Abs(s.dir.Y)
	scaleX := (1 + stretch*ax) * (1 - stretch*ay)
	scaleY := (1 - stretch*ax) * (1 + stretch*ay)

	if steps := s.anim.TrailSteps; s.trail > 0.01 && ax+ay > 0 {
		w := max(1, int(2*size*scaleX))
		h := max(1, int(size*scaleY))
		for i := 1; i <= steps; i++ {
			falloff := float64(steps-i+1) / float64(steps+1)
			alpha := uint8(90 * s.trail * falloff)
			if alpha == 0 {
				continue
			}
			// Cells are twice as tall as wide, so the trail steps twice as far in x.
			tx := s.pos.X - s.dir.X*float64(i)*2*size
			ty := s.pos.Y - s.dir.Y*float64(i)*size
			r := core.NewRect(int(math.Floor(tx))-w/2, int(math.Floor(ty))-h/2, w, h)
			dst.FillRect(r, s.key.Color, alpha)
		}
	}

	jitter := 0.6 * s.squash
	jx := math.Sin(s.phase+0.7) * jitter
	jy := math.Cos(s.phase) * jitter

	res, err := s.cache.Get(s.key)
	if err != nil {
		return
	}
	dst.DrawSprite(res, s.pos.X+jx, s.pos.Y+jy, 255)
}

// Pos returns the square's center.
func (s *Square) Pos() core.Vec2 {
	return s.pos
}

// Squash returns the current squash amount in [0, 1].
func (s *Square) Squash() float64 {
	return s.squash
}
