package graphics

import (
	"image"
	"image/color"
)

// Pixmap is the frame's pixel buffer: straight-alpha RGBA, 4 bytes per
// pixel, row-major from the top-left.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data, suitable for texture upload.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c [4]float32) {
	r := floatByte(c[0])
	g := floatByte(c[1])
	b := floatByte(c[2])
	a := floatByte(c[3])

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// SetPixel overwrites a single pixel, ignoring out-of-bounds
// coordinates.
func (p *Pixmap) SetPixel(x, y int, c [4]float32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = floatByte(c[0])
	p.data[i+1] = floatByte(c[1])
	p.data[i+2] = floatByte(c[2])
	p.data[i+3] = floatByte(c[3])
}

// BlendPixel composites a color over a single pixel with source-over
// alpha blending. Out-of-bounds coordinates are ignored.
func (p *Pixmap) BlendPixel(x, y int, c [4]float32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	sa := clamp01(c[3])
	if sa == 0 {
		return
	}
	i := (y*p.width + x) * 4
	if sa == 1 {
		p.data[i+0] = floatByte(c[0])
		p.data[i+1] = floatByte(c[1])
		p.data[i+2] = floatByte(c[2])
		p.data[i+3] = 255
		return
	}

	da := float32(p.data[i+3]) / 255
	oa := sa + da*(1-sa)
	for ch := 0; ch < 3; ch++ {
		s := clamp01(c[ch])
		d := float32(p.data[i+ch]) / 255
		p.data[i+ch] = floatByte((s*sa + d*da*(1-sa)) / oa)
	}
	p.data[i+3] = floatByte(oa)
}

// Pixel returns a single pixel as floats. Out-of-bounds coordinates
// read transparent black.
func (p *Pixmap) Pixel(x, y int) [4]float32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return [4]float32{}
	}
	i := (y*p.width + x) * 4
	return [4]float32{
		float32(p.data[i+0]) / 255,
		float32(p.data[i+1]) / 255,
		float32(p.data[i+2]) / 255,
		float32(p.data[i+3]) / 255,
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no storage
// with the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Pixel(x, y)
	return color.NRGBA{R: floatByte(c[0]), G: floatByte(c[1]), B: floatByte(c[2]), A: floatByte(c[3])}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func floatByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
