package core

import (
	"strings"
)

// Cell is one character position of the screen buffer.
// Alpha 0 means the cell is unstyled and uses the terminal's own colors.
type Cell struct {
	Rune  rune
	Color RGB
	Alpha uint8
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer for rendering demo graphics.
// It decouples demo rendering from the terminal, allowing demos to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to an unstyled space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// Plot places a colored rune with the given alpha at (x, y).
func (s *Screen) Plot(x, y int, r rune, c RGB, alpha uint8) {
	s.SetCell(x, y, Cell{Rune: r, Color: c, Alpha: alpha})
}

// SetCell overwrites the cell at (x, y). Later writes win (painter's order).
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextColored writes a string in the given color at full opacity.
func (s *Screen) DrawTextColored(x, y int, text string, c RGB) {
	i := 0
	for _, r := range text {
		s.Plot(x+i, y, r, c, 255)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillRect fills a rectangular area with a colored rune.
func (s *Screen) FillRect(r Rect, fill rune, c RGB, alpha uint8) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Plot(x, y, fill, c, alpha)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c RGB) {
	s.Plot(r.X, r.Y, '┌', c, 255)
	s.Plot(r.Right()-1, r.Y, '┐', c, 255)
	s.Plot(r.X, r.Bottom()-1, '└', c, 255)
	s.Plot(r.Right()-1, r.Bottom()-1, '┘', c, 255)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Plot(x, r.Y, '─', c, 255)
		s.Plot(x, r.Bottom()-1, '─', c, 255)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Plot(r.X, y, '│', c, 255)
		s.Plot(r.Right()-1, y, '│', c, 255)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c RGB) {
	for i := 0; i < length; i++ {
		s.Plot(x+i, y, r, c, 255)
	}
}

// DrawMessage draws a boxed title and subtitle in the center of the screen.
func (s *Screen) DrawMessage(title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := NewRect((s.width-boxW)/2, (s.height-boxH)/2, boxW, boxH)

	s.FillRect(box, ' ', RGB{}, 0)
	s.DrawBox(box, ColorHUD)
	s.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, ColorWhite)
	s.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, ColorHint)
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
