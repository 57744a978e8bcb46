package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette used by the title screens and the HUD.
var (
	TitleColor   = tcell.ColorYellow
	TextColor    = tcell.ColorWhite
	DimColor     = tcell.ColorDarkGray
	LoseColor    = tcell.ColorRed
	MessageColor = tcell.ColorWhite
	StatusColor  = tcell.ColorLightYellow
)

// Hex renders c as #rrggbb. Colors without an RGB value (the terminal
// default) come out black.
func Hex(c tcell.Color) string {
	if c.Hex() < 0 {
		return "#000000"
	}
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// ParseHex turns a frame color back into a tcell color.
func ParseHex(s string) tcell.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// RandomBackground picks a random fully saturated color; the win screen
// paints every line with one.
func RandomBackground(rnd func() float64) tcell.Color {
	c := colorful.Hsv(rnd()*360, 0.6+rnd()*0.4, 0.6+rnd()*0.4)
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
