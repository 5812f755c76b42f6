package genji

import "image/color"

// Color is an RGBA color in byte format. Each channel is in the
// range [0, 255]. The zero value is fully transparent black; most
// callers want White, the sprite default.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// NewColor creates a color from byte channels.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithR returns the color with the red channel replaced.
func (c Color) WithR(r uint8) Color {
	c.R = r
	return c
}

// WithG returns the color with the green channel replaced.
func (c Color) WithG(g uint8) Color {
	c.G = g
	return c
}

// WithB returns the color with the blue channel replaced.
func (c Color) WithB(b uint8) Color {
	c.B = b
	return c
}

// WithA returns the color with the alpha channel replaced.
func (c Color) WithA(a uint8) Color {
	c.A = a
	return c
}

// FromFloats creates a color from 0.0-1.0 channel values.
// Values outside the range are clamped.
func FromFloats(r, g, b, a float32) Color {
	return Color{
		R: floatByte(r),
		G: floatByte(g),
		B: floatByte(b),
		A: floatByte(a),
	}
}

// Floats returns the color channels adjusted from 0-255 to 0.0-1.0,
// the form the vertex stage consumes.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func floatByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
