package bridge

import (
	"math"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
)

const (
	actorW = 4
	actorH = 3
	// landSquash is the squash set by a hard landing or a jump.
	landSquash = 0.25
	// hardLanding is the fall speed, in rows per second, that squashes on landing.
	hardLanding = 9.0
)

// Actor is the abstraction side: it owns movement and delegates all drawing
// to its RenderAPI.
type Actor struct {
	pos      core.Vec2 // feet, in cells
	vel      core.Vec2
	facing   int
	onGround bool
	squash   float64
	color    core.RGB
	api      RenderAPI
	phys     config.RunnerPhysics
	floorY   float64
	maxX     float64
}

func newActor(x, floorY, maxX float64, c core.RGB, api RenderAPI, phys config.RunnerPhysics) Actor {
	return Actor{
		pos:      core.Vec2{X: x, Y: floorY},
		facing:   1,
		onGround: true,
		color:    c,
		api:      api,
		phys:     phys,
		floorY:   floorY,
		maxX:     maxX,
	}
}

// SetRenderer swaps the implementation used by Draw.
func (a *Actor) SetRenderer(api RenderAPI) {
	a.api = api
}

// Renderer returns the current implementation.
func (a *Actor) Renderer() RenderAPI {
	return a.api
}

// Pos returns the feet position.
func (a *Actor) Pos() core.Vec2 {
	return a.pos
}

// OnGround reports whether the actor is standing.
func (a *Actor) OnGround() bool {
	return a.onGround
}

// integrate applies gravity, moves, lands and relaxes the squash.
func (a *Actor) integrate(dt float64) {
	switch {
	case a.vel.X > 0.5:
		a.facing = 1
	case a.vel.X < -0.5:
		a.facing = -1
	}

	a.vel.Y += a.phys.Gravity * dt
	a.pos = a.pos.Add(a.vel.Scale(dt))

	half := float64(actorW) / 2
	if a.pos.X < half || a.pos.X > a.maxX-half {
		a.pos.X = core.ClampF(a.pos.X, half, a.maxX-half)
		a.vel.X = 0
	}

	if a.pos.Y >= a.floorY {
		if !a.onGround && a.vel.Y > hardLanding {
			a.squash = landSquash
		}
		a.pos.Y = a.floorY
		a.vel.Y = 0
		a.onGround = true
	}

	a.squash *= 1 - min(1, dt*8)
}

// Body is the drawn rectangle, squashed wider and shorter with the feet fixed.
func (a *Actor) Body() core.Rect {
	w := max(1, int(math.Round(actorW*(1+a.squash*0.6))))
	h := max(1, int(math.Round(actorH*(1-a.squash*0.6))))
	feet := int(math.Floor(a.pos.Y))
	return core.NewRect(int(math.Round(a.pos.X))-w/2, feet-h+1, w, h)
}

// Draw hands the body to the current renderer.
func (a *Actor) Draw(dst *core.Screen) {
	if a.api == nil {
		return
	}
	a.api.DrawActor(dst, a.Body(), a.facing, a.color, a.squash)
}

// Player is steered by input.
type Player struct {
	Actor
	friction float64
}

// NewPlayer stands a player at x on floorY.
func NewPlayer(x, floorY, maxX float64, c core.RGB, api RenderAPI, phys config.RunnerPhysics, friction float64) *Player {
	return &Player{Actor: newActor(x, floorY, maxX, c, api, phys), friction: friction}
}

// Update accelerates toward dir up to the move speed, eases off without
// input and jumps from the ground.
func (p *Player) Update(dt, dir float64, jump bool) {
	top := p.phys.MoveSpeed
	if dir != 0 {
		p.vel.X = core.ClampF(p.vel.X+dir*top*4*dt, -top, top)
	} else {
		p.vel.X *= 1 - min(1, p.friction*dt)
	}
	if jump && p.onGround {
		p.vel.Y = -p.phys.JumpPower
		p.onGround = false
		p.squash = landSquash
	}
	p.integrate(dt)
}

// NPC walks back and forth around its post.
type NPC struct {
	Actor
	centerX float64
	reach   float64
	speed   float64
	t       float64
}

// NewNPC posts an NPC at centerX. phase offsets its patrol cycle.
func NewNPC(centerX, floorY, maxX float64, c core.RGB, api RenderAPI, phys config.RunnerPhysics, patrol config.BridgePatrol, phase float64) *NPC {
	n := &NPC{
		Actor:   newActor(centerX, floorY, maxX, c, api, phys),
		centerX: centerX,
		reach:   patrol.Range,
		speed:   patrol.Speed,
		t:       phase,
	}
	n.pos.X = n.target()
	return n
}

func (n *NPC) target() float64 {
	return n.centerX + math.Cos(n.t*n.speed)*n.reach
}

// Update steers toward the next patrol point.
func (n *NPC) Update(dt float64) {
	n.t += dt
	top := n.phys.MoveSpeed * 0.6
	want := core.ClampF((n.target()-n.pos.X)*2, -top, top)
	n.vel.X += (want - n.vel.X) * min(1, dt*6)
	n.integrate(dt)
}
