package view

import "image/color"

// Dark-theme layer palette, keyed by stack position bottom to top. Lower
// layers sit in cooler colors, upper layers in warmer ones, so a tri-layer
// sandwich reads blue / green / red at a glance.
var stackColors = []color.NRGBA{
	{R: 77, G: 127, B: 196, A: 255},  // bottom (blue)
	{R: 127, G: 200, B: 127, A: 255}, // green
	{R: 200, G: 52, B: 52, A: 255},   // red
	{R: 206, G: 125, B: 44, A: 255},  // orange
	{R: 216, G: 200, B: 82, A: 255},  // yellow
	{R: 180, G: 142, B: 173, A: 255}, // purple
	{R: 136, G: 192, B: 208, A: 255}, // cyan
	{R: 229, G: 233, B: 240, A: 255}, // near-white
}

// Special colors.
var (
	ColorBackground = color.NRGBA{R: 0, G: 16, B: 35, A: 255}     // dark blue
	ColorVia        = color.NRGBA{R: 236, G: 236, B: 236, A: 255} // light gray
	ColorLabel      = color.NRGBA{R: 242, G: 237, B: 161, A: 255} // yellow
	ColorShield     = color.NRGBA{R: 120, G: 130, B: 140, A: 200} // muted gray
)

// plateAlpha makes sandwich plates translucent so the core stays visible.
const plateAlpha = 90

// StackColor returns the color for a stack position, cycling when the
// stack is taller than the palette.
func StackColor(index int) color.NRGBA {
	if index < 0 {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return stackColors[index%len(stackColors)]
}

// PlateColor returns the translucent fill for a solid plate.
func PlateColor(index int) color.NRGBA {
	c := StackColor(index)
	c.A = plateAlpha
	return c
}
