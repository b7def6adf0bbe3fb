package flyweight

import (
	"math"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// SpriteGlyph is the rune used for every filled sprite cell.
const SpriteGlyph = '█'

// Resource is a pre-rendered sprite mask built once from a Key.
// Terminal cells are roughly twice as tall as wide, so a sprite of size n spans
// 2n columns and n rows. Nothing mutates a Resource after construction.
type Resource struct {
	key    Key
	width  int
	height int
	mask   []bool // row-major, width*height
	offX   int
	offY   int
}

func newResource(k Key) *Resource {
	w, h := 2*k.Size, k.Size
	r := &Resource{
		key:    k,
		width:  w,
		height: h,
		mask:   make([]bool, w*h),
		offX:   w / 2,
		offY:   h / 2,
	}

	switch k.Shape {
	case ShapeCircle:
		radius := float64(k.Size)
		for y := 0; y < h; y++ {
			// rows count double to undo the cell aspect ratio
			dy := 2*(float64(y)+0.5) - radius
			for x := 0; x < w; x++ {
				dx := float64(x) + 0.5 - radius
				r.mask[y*w+x] = dx*dx+dy*dy <= radius*radius
			}
		}
	case ShapeRect:
		for i := range r.mask {
			r.mask[i] = true
		}
		// rounded corners once the sprite is big enough to show them
		if k.Size >= 4 {
			r.mask[0] = false
			r.mask[w-1] = false
			r.mask[(h-1)*w] = false
			r.mask[h*w-1] = false
		}
	}
	return r
}

// Key returns the intrinsic state this sprite was built from.
func (r *Resource) Key() Key {
	return r.key
}

// Width returns the sprite width in cells.
func (r *Resource) Width() int {
	return r.width
}

// Height returns the sprite height in cells.
func (r *Resource) Height() int {
	return r.height
}

// Offset returns the anchor that Draw aligns with the requested position.
func (r *Resource) Offset() (int, int) {
	return r.offX, r.offY
}

// Filled reports whether the sprite covers local cell (x, y).
func (r *Resource) Filled(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	return r.mask[y*r.width+x]
}

// Area returns the number of filled cells.
func (r *Resource) Area() int {
	n := 0
	for _, f := range r.mask {
		if f {
			n++
		}
	}
	return n
}

// Draw stamps the sprite centered on (x, y). Alpha is applied per draw, so many
// entities can share one sprite at different opacities. Alpha 0 draws nothing.
func (r *Resource) Draw(dst *core.Screen, x, y float64, alpha uint8) {
	if alpha == 0 {
		return
	}
	ox := int(math.Floor(x)) - r.offX
	oy := int(math.Floor(y)) - r.offY
	for j := 0; j < r.height; j++ {
		row := r.mask[j*r.width : (j+1)*r.width]
		for i, filled := range row {
			if filled {
				dst.Plot(ox+i, oy+j, SpriteGlyph, r.key.Color, alpha)
			}
		}
	}
}
