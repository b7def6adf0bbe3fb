package core

// RGB is a 24-bit color carried by screen cells and shared sprites.
// It is a plain value type, so it compares and hashes structurally.
type RGB struct {
	R, G, B uint8
}

// NewRGB builds an RGB from its components.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Palette used by the demos. Values match the classic CSS names.
var (
	ColorBackground = RGB{18, 20, 24}
	ColorHUD        = RGB{215, 215, 215}
	ColorHint       = RGB{200, 200, 200}
	ColorGround     = RGB{40, 46, 56}
	ColorWhite      = RGB{235, 235, 235}
	ColorTomato     = RGB{255, 99, 71}
	ColorSkyBlue    = RGB{135, 206, 235}
	ColorLightGreen = RGB{144, 238, 144}
	ColorGold       = RGB{255, 215, 0}
	ColorPlum       = RGB{221, 160, 221}
	ColorLightPink  = RGB{255, 182, 193}
	ColorCyan       = RGB{90, 220, 220}
	ColorBlue       = RGB{80, 140, 255}
)
