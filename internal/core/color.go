package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// heatRamp runs from a fresh projectile to one about to burn out.
var heatRamp = []Color{
	ColorBrightYellow,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
}

// HeatColor picks a color along the projectile ramp for t in [0, 1].
func HeatColor(t float64) Color {
	t = ClampF(t, 0, 1)
	i := int(t * float64(len(heatRamp)))
	if i >= len(heatRamp) {
		i = len(heatRamp) - 1
	}
	return heatRamp[i]
}
