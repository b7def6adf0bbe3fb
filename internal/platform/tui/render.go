package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// Renderer converts Screen buffers into styled strings. Translucent cells are
// blended over the background color, and one lipgloss style is kept per
// resulting hex color.
//
// A Renderer is not safe for concurrent use; give each program its own.
type Renderer struct {
	lg         *lipgloss.Renderer
	background colorful.Color
	styles     map[string]lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default
// one for the local terminal.
func NewRenderer(lg *lipgloss.Renderer, background core.RGB) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:         lg,
		background: toColorful(background),
		styles:     make(map[string]lipgloss.Style),
	}
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// CellHex returns the displayed color of a cell, or "" for unstyled cells.
func (r *Renderer) CellHex(c core.Cell) string {
	if c.Alpha == 0 {
		return ""
	}
	fg := toColorful(c.Color)
	if c.Alpha < 255 {
		fg = r.background.BlendRgb(fg, float64(c.Alpha)/255)
	}
	return fg.Clamped().Hex()
}

func (r *Renderer) style(hex string) lipgloss.Style {
	if st, ok := r.styles[hex]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	r.styles[hex] = st
	return st
}

// StyleCount returns how many distinct styles have been built.
func (r *Renderer) StyleCount() int {
	return len(r.styles)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		runHex := ""
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			hex := r.CellHex(cell)
			if x > 0 && hex != runHex {
				sb.WriteString(r.style(runHex).Render(run.String()))
				run.Reset()
			}
			runHex = hex
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(r.style(runHex).Render(run.String()))
		}
	}
	return sb.String()
}
