package decorator

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// Motion is one tick of intent: run direction and jump, with the speeds
// already resolved through every layer.
type Motion struct {
	Dir       float64 // -1, 0 or 1
	Jump      bool
	Speed     float64
	JumpPower float64
}

// Character is anything the player controls. Decorators implement it by
// wrapping another Character and changing some of its answers.
type Character interface {
	Update(dt float64, m Motion)
	Draw(dst *core.Screen)
	Bounds() core.Rect
	Facing() int
	MoveSpeed() float64
	JumpPower() float64
	Shielded() bool
	Damage(n int)
	HP() int
}

// Layer is a Character that wraps another one.
type Layer interface {
	Character
	Unwrap() Character
}

// Effect is a layer that wears off.
type Effect interface {
	Layer
	Name() string
	Tint() core.RGB
	Remaining() float64
	Duration() float64
	Expired() bool
}

type wrapper interface {
	Layer
	setInner(c Character)
}

// Advance moves c by one tick, asking the outermost layer for its speeds.
func Advance(c Character, dt, dir float64, jump bool) {
	c.Update(dt, Motion{Dir: dir, Jump: jump, Speed: c.MoveSpeed(), JumpPower: c.JumpPower()})
}

// StripExpired drops every expired effect from the chain and returns the new
// outermost character. Live layers keep their order.
func StripExpired(c Character) Character {
	w, ok := c.(wrapper)
	if !ok {
		return c
	}
	w.setInner(StripExpired(w.Unwrap()))
	if e, ok := c.(Effect); ok && e.Expired() {
		return w.Unwrap()
	}
	return c
}

// Effects lists the active effects from the outside in.
func Effects(c Character) []Effect {
	var out []Effect
	for {
		l, ok := c.(Layer)
		if !ok {
			return out
		}
		if e, ok := l.(Effect); ok {
			out = append(out, e)
		}
		c = l.Unwrap()
	}
}

// Describe renders the chain as "Shield(Speed(Hero))".
func Describe(c Character) string {
	effects := Effects(c)
	var b strings.Builder
	for _, e := range effects {
		b.WriteString(e.Name())
		b.WriteByte('(')
	}
	b.WriteString("Hero")
	b.WriteString(strings.Repeat(")", len(effects)))
	return b.String()
}

// Hero is the undecorated character: a shared body sprite on two legs.
type Hero struct {
	sprite   *flyweight.Resource
	physics  config.RunnerPhysics
	x, y     float64 // feet, in cells
	vx, vy   float64
	floorY   float64
	maxX     float64
	onGround bool
	facing   int
	hp       int
	legPhase float64
}

// NewHero stands a hero with hp hit points on floorY. The body comes from
// sprite; maxX is the screen width.
func NewHero(sprite *flyweight.Resource, phys config.RunnerPhysics, x, floorY, maxX float64, hp int) *Hero {
	return &Hero{
		sprite:   sprite,
		physics:  phys,
		x:        x,
		y:        floorY,
		floorY:   floorY,
		maxX:     maxX,
		onGround: true,
		facing:   1,
		hp:       hp,
	}
}

func (h *Hero) half() float64 {
	return float64(h.sprite.Width()) / 2
}

// Update applies one tick of running, jumping and gravity.
func (h *Hero) Update(dt float64, m Motion) {
	h.vx = m.Dir * m.Speed
	switch {
	case m.Dir < 0:
		h.facing = -1
	case m.Dir > 0:
		h.facing = 1
	}
	h.x = core.ClampF(h.x+h.vx*dt, h.half(), h.maxX-h.half())

	if m.Jump && h.onGround {
		h.vy = -m.JumpPower
		h.onGround = false
	}
	h.vy += h.physics.Gravity * dt
	h.y += h.vy * dt
	if h.y >= h.floorY {
		h.y = h.floorY
		h.vy = 0
		h.onGround = true
	}

	if h.onGround && math.Abs(h.vx) > 1 {
		h.legPhase += dt * 12
	} else {
		h.legPhase *= 1 - min(1, dt*8)
	}
}

// Bounds covers the body rows and the legs row.
func (h *Hero) Bounds() core.Rect {
	w, bodyH := h.sprite.Width(), h.sprite.Height()
	fx, fy := int(math.Floor(h.x)), int(math.Floor(h.y))
	return core.NewRect(fx-w/2, fy-bodyH, w, bodyH+1)
}

// Draw stamps the body, an eye on the facing side and the legs.
func (h *Hero) Draw(dst *core.Screen) {
	b := h.Bounds()
	bodyH := h.sprite.Height()
	// The sprite centers on its offset row; shift so its last row sits above the feet.
	h.sprite.Draw(dst, h.x, h.y-float64(bodyH-bodyH/2), 255)

	eyeX := b.X + b.W/2
	if h.facing < 0 {
		eyeX--
	}
	dst.Plot(eyeX, b.Y, '•', core.ColorWhite, 255)

	left, right := '|', '|'
	switch s := math.Sin(h.legPhase); {
	case s > 0.3:
		left, right = '/', '\\'
	case s < -0.3:
		left, right = '\\', '/'
	}
	feet := b.Bottom() - 1
	dst.Plot(b.X, feet, left, core.ColorHUD, 255)
	dst.Plot(b.Right()-1, feet, right, core.ColorHUD, 255)
}

func (h *Hero) Facing() int        { return h.facing }
func (h *Hero) MoveSpeed() float64 { return h.physics.MoveSpeed }
func (h *Hero) JumpPower() float64 { return h.physics.JumpPower }
func (h *Hero) Shielded() bool     { return false }
func (h *Hero) HP() int            { return h.hp }

// Damage takes n hit points, never going below zero.
func (h *Hero) Damage(n int) {
	h.hp = max(0, h.hp-n)
}

// timed is the shared base of every effect: it forwards to the wrapped
// character and counts down.
type timed struct {
	Character
	remaining float64
	duration  float64
}

func newTimed(c Character, duration float64) timed {
	return timed{Character: c, remaining: duration, duration: duration}
}

func (t *timed) Update(dt float64, m Motion) {
	t.Character.Update(dt, m)
	t.remaining -= dt
}

func (t *timed) Unwrap() Character    { return t.Character }
func (t *timed) setInner(c Character) { t.Character = c }
func (t *timed) Remaining() float64   { return max(0, t.remaining) }
func (t *timed) Duration() float64    { return t.duration }
func (t *timed) Expired() bool        { return t.remaining <= 0 }

// SpeedBoost multiplies the run speed.
type SpeedBoost struct {
	timed
	multiplier float64
}

// NewSpeedBoost wraps c for duration seconds.
func NewSpeedBoost(c Character, duration, multiplier float64) *SpeedBoost {
	return &SpeedBoost{timed: newTimed(c, duration), multiplier: multiplier}
}

func (s *SpeedBoost) MoveSpeed() float64 { return s.Character.MoveSpeed() * s.multiplier }
func (s *SpeedBoost) Name() string       { return "Speed" }
func (s *SpeedBoost) Tint() core.RGB     { return core.ColorGold }

// Draw trails speed lines behind the wrapped character.
func (s *SpeedBoost) Draw(dst *core.Screen) {
	b := s.Bounds()
	x := b.X - 2
	if s.Facing() < 0 {
		x = b.Right()
	}
	for y := b.Y; y < b.Bottom()-1; y++ {
		dst.DrawTextColored(x, y, "==", s.Tint())
	}
	s.Character.Draw(dst)
}

// JumpBoost adds to the jump power.
type JumpBoost struct {
	timed
	bonus float64
}

// NewJumpBoost wraps c for duration seconds.
func NewJumpBoost(c Character, duration, bonus float64) *JumpBoost {
	return &JumpBoost{timed: newTimed(c, duration), bonus: bonus}
}

func (j *JumpBoost) JumpPower() float64 { return j.Character.JumpPower() + j.bonus }
func (j *JumpBoost) Name() string       { return "Jump" }
func (j *JumpBoost) Tint() core.RGB     { return core.ColorPlum }

// Draw marks the head with arrows.
func (j *JumpBoost) Draw(dst *core.Screen) {
	j.Character.Draw(dst)
	b := j.Bounds()
	dst.DrawTextColored(b.X, b.Y-1, strings.Repeat("^", b.W), j.Tint())
}

// Shield absorbs all damage while it lasts.
type Shield struct {
	timed
}

// NewShield wraps c for duration seconds.
func NewShield(c Character, duration float64) *Shield {
	return &Shield{timed: newTimed(c, duration)}
}

func (s *Shield) Shielded() bool { return true }
func (s *Shield) Damage(int)     {}
func (s *Shield) Name() string   { return "Shield" }
func (s *Shield) Tint() core.RGB { return core.ColorCyan }

// Draw boxes the wrapped character.
func (s *Shield) Draw(dst *core.Screen) {
	s.Character.Draw(dst)
	dst.DrawBox(s.Bounds().Inflate(1, 1), s.Tint())
}

var (
	_ Effect = (*SpeedBoost)(nil)
	_ Effect = (*JumpBoost)(nil)
	_ Effect = (*Shield)(nil)
)
