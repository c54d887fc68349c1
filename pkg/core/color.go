package core

import "image/color"

// ColorPixel is an RGB color with channels normalized to [0, 1] by convention
type ColorPixel struct {
	R, G, B float64
}

// NewColorPixel creates a new ColorPixel
func NewColorPixel(r, g, b float64) ColorPixel {
	return ColorPixel{R: r, G: g, B: b}
}

// Scale returns the color with every channel multiplied by f
func (c ColorPixel) Scale(f float64) ColorPixel {
	return ColorPixel{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Clamp returns a color with channels clamped to [0, 1]
func (c ColorPixel) Clamp() ColorPixel {
	return ColorPixel{
		R: max(0.0, min(1.0, c.R)),
		G: max(0.0, min(1.0, c.G)),
		B: max(0.0, min(1.0, c.B)),
	}
}

// RGBA converts the color to 8-bit RGBA. Channels are clamped, no gamma is applied.
func (c ColorPixel) RGBA() color.RGBA {
	clamped := c.Clamp()
	return color.RGBA{
		R: uint8(255*clamped.R + 0.5),
		G: uint8(255*clamped.G + 0.5),
		B: uint8(255*clamped.B + 0.5),
		A: 255,
	}
}
