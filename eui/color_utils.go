package eui

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is the toolkit's paint color. It converts directly to color.RGBA for
// ebiten draw calls.
type Color color.RGBA

// White is returned wherever a lookup has nothing better to offer.
var White = NewColor(255, 255, 255, 255)

// Black is the darkest endpoint used by ramp generation.
var Black = NewColor(0, 0, 0, 255)

func NewColor(r, g, b, a uint8) Color {
	return Color(color.RGBA{R: r, G: g, B: b, A: a})
}

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

// Hex renders the color as #rrggbb, appending the alpha byte only when the
// color is not fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// Lerp blends c toward o in Lab space. Alpha is interpolated linearly.
func (c Color) Lerp(o Color, t float64) Color {
	t = clamp(t, 0, 1)
	a := c.colorful()
	b := o.colorful()
	mixed := a.BlendLab(b, t).Clamped()
	r, g, bl := mixed.RGB255()
	alpha := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return NewColor(r, g, bl, uint8(alpha+0.5))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
