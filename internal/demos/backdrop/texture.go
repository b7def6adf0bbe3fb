package backdrop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// Texture is a full-screen image the scene draws behind everything else.
// Load asks for the real image right away; textures that are always ready
// ignore it.
type Texture interface {
	Update(dt float64)
	Draw(dst *core.Screen)
	Load()
	Loaded() bool
}

var (
	_ Texture = (*Starfield)(nil)
	_ Texture = (*ProxyTexture)(nil)
)

var (
	cardFill   = core.NewRGB(24, 28, 36)
	cardBorder = core.NewRGB(70, 80, 96)
	nebula     = core.NewRGB(90, 140, 255)
)

// Starfield is the expensive texture: a vertical gradient with stars and
// soft nebula blobs, generated once into a cell buffer.
type Starfield struct {
	width  int
	height int
	cells  []core.Cell
}

// NewStarfield generates a starfield of the given size. The same seed always
// yields the same image.
func NewStarfield(width, height, stars int, seed int64) *Starfield {
	width, height = max(width, 0), max(height, 0)
	sf := &Starfield{width: width, height: height, cells: make([]core.Cell, width*height)}
	if width == 0 || height == 0 {
		return sf
	}
	rng := rand.New(rand.NewSource(seed))

	for y := range height {
		t := float64(y) / float64(max(1, height-1))
		c := core.NewRGB(uint8(30+20*(1-t)), uint8(40+30*(1-t)), uint8(70+80*t))
		for x := range width {
			sf.set(x, y, core.Cell{Rune: '░', Color: c, Alpha: 255})
		}
	}

	for range max(1, stars/15) {
		cx, cy := rng.Intn(width), rng.Intn(height)
		rad := 2 + rng.Intn(5)
		alpha := uint8(30 + rng.Intn(51))
		for dy := -rad; dy <= rad; dy++ {
			for dx := -2 * rad; dx <= 2*rad; dx++ {
				// Cells are twice as tall as wide.
				if math.Hypot(float64(dx)/2, float64(dy)) > float64(rad) {
					continue
				}
				sf.set(cx+dx, cy+dy, core.Cell{Rune: '▒', Color: nebula, Alpha: alpha})
			}
		}
	}

	glyphs := []rune{'.', '·', '*', '+'}
	for range stars {
		v := uint8(220 + rng.Intn(41) - 20)
		sf.set(rng.Intn(width), rng.Intn(height), core.Cell{
			Rune:  glyphs[rng.Intn(len(glyphs))],
			Color: core.NewRGB(v, v, v),
			Alpha: 200,
		})
	}

	return sf
}

func (sf *Starfield) set(x, y int, c core.Cell) {
	if x < 0 || x >= sf.width || y < 0 || y >= sf.height {
		return
	}
	sf.cells[y*sf.width+x] = c
}

// Update does nothing; a built starfield is static.
func (sf *Starfield) Update(float64) {}

// Draw copies the starfield onto dst.
func (sf *Starfield) Draw(dst *core.Screen) {
	for y := range sf.height {
		for x := range sf.width {
			dst.SetCell(x, y, sf.cells[y*sf.width+x])
		}
	}
}

// Load does nothing; a starfield is built on creation.
func (sf *Starfield) Load() {}

// Loaded always reports true.
func (sf *Starfield) Loaded() bool {
	return true
}

// ProxyTexture stands in for a Starfield. It draws a placeholder card with a
// spinner and builds the real texture once the accumulated time passes the
// load delay, without ever blocking a frame.
type ProxyTexture struct {
	width  int
	height int
	stars  int
	seed   int64
	delay  float64

	timer  float64
	real   *Starfield
	spin   int
	builds int
}

// NewProxyTexture creates an unloaded proxy.
func NewProxyTexture(width, height, stars int, seed int64, delay float64) *ProxyTexture {
	return &ProxyTexture{width: width, height: height, stars: stars, seed: seed, delay: delay}
}

// Update advances the load timer and the spinner.
func (p *ProxyTexture) Update(dt float64) {
	if p.real != nil {
		return
	}
	p.timer += dt
	p.spin++
	if p.timer >= p.delay {
		p.load()
	}
}

// Load builds the real texture now if it has not been built yet.
func (p *ProxyTexture) Load() {
	if p.real == nil {
		p.load()
	}
}

func (p *ProxyTexture) load() {
	p.real = NewStarfield(p.width, p.height, p.stars, p.seed)
	p.builds++
}

// Loaded reports whether the real texture exists.
func (p *ProxyTexture) Loaded() bool {
	return p.real != nil
}

// Elapsed returns the time spent waiting so far.
func (p *ProxyTexture) Elapsed() float64 {
	return p.timer
}

// Builds returns how many times the real texture was generated.
func (p *ProxyTexture) Builds() int {
	return p.builds
}

// Draw renders the real texture when loaded, otherwise the placeholder.
func (p *ProxyTexture) Draw(dst *core.Screen) {
	if p.real != nil {
		p.real.Draw(dst)
		return
	}

	card := core.NewRect(0, 0, p.width, p.height)
	dst.FillRect(card, ' ', cardFill, 255)
	dst.DrawBox(card, cardBorder)
	dst.DrawTextColored(2, 1, "Loading big background (via Proxy)...", core.ColorHint)

	cx, cy := float64(p.width/2), float64(p.height/2)
	frame := p.spin / 4
	for i := range 8 {
		ang := float64(i+frame) * 0.8
		r := 3 + float64(i)*0.5
		x := int(math.Round(cx + 2*r*math.Cos(ang)))
		y := int(math.Round(cy + r*math.Sin(ang)))
		dst.Plot(x, y, '●', core.ColorBlue, uint8(min(255, 60+i*20)))
	}
}
