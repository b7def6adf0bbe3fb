package bridge

import "github.com/vovakirdan/tui-patterns/internal/core"

// RenderAPI draws an actor's body. Actors hold one and can swap it at any time
// without changing how they move.
type RenderAPI interface {
	Name() string
	DrawActor(dst *core.Screen, body core.Rect, facing int, c core.RGB, squash float64)
}

// SolidRenderer fills the body.
type SolidRenderer struct{}

// OutlineRenderer fills the body and frames it in white.
type OutlineRenderer struct{}

// GlowRenderer fades concentric halos around the body.
type GlowRenderer struct {
	Layers int
}

var (
	_ RenderAPI = SolidRenderer{}
	_ RenderAPI = OutlineRenderer{}
	_ RenderAPI = GlowRenderer{}
)

func (SolidRenderer) Name() string   { return "Solid" }
func (OutlineRenderer) Name() string { return "Outline" }
func (GlowRenderer) Name() string    { return "Glow" }

func (SolidRenderer) DrawActor(dst *core.Screen, body core.Rect, facing int, c core.RGB, _ float64) {
	dst.FillRect(body, '█', c, 255)
	drawEye(dst, body, facing)
}

func (OutlineRenderer) DrawActor(dst *core.Screen, body core.Rect, facing int, c core.RGB, _ float64) {
	dst.FillRect(body, '█', c, 255)
	dst.DrawBox(body.Inflate(1, 1), core.ColorWhite)
	drawEye(dst, body, facing)
}

// DrawActor paints the outermost halo first. A squashed body glows wider.
func (g GlowRenderer) DrawActor(dst *core.Screen, body core.Rect, facing int, c core.RGB, squash float64) {
	spread := 2
	if squash > 0.1 {
		spread = 3
	}
	for i := max(1, g.Layers); i >= 1; i-- {
		alpha := uint8(max(40, 140-30*i))
		dst.FillRect(body.Inflate(spread*i, i), '░', c, alpha)
	}
	dst.FillRect(body, '█', c, 255)
	drawEye(dst, body, facing)
}

// drawEye marks the facing side of the top row.
func drawEye(dst *core.Screen, body core.Rect, facing int) {
	x := body.X + body.W/2
	if facing < 0 {
		x--
	}
	dst.Plot(core.Clamp(x, body.X, body.Right()-1), body.Y, '•', core.ColorWhite, 255)
}
