package graphics

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/genji-engine/genji/sprite"
)

// RenderText rasterizes a text sprite into a pixmap: white glyphs on
// transparent, one line per newline, kerned by the font. The sprite's
// color component tints the glyphs at the fragment stage, so the
// raster itself stays uncolored.
func RenderText(t *sprite.Text) (*Pixmap, error) {
	if t.Font == nil {
		return nil, fmt.Errorf("graphics: text %q has no font", t.Str)
	}
	face, err := t.Font.Face(t.Size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	lineH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	lines := strings.Split(t.Str, "\n")
	width := 1
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	height := lineH * len(lines)
	if height < 1 {
		height = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(0, ascent+i*lineH)
		d.DrawString(line)
	}

	p := NewPixmap(width, height)
	copy(p.data, img.Pix)
	return p, nil
}

// TextTexture rasterizes a text sprite and wraps it as a texture for
// the fragment stage. One raster pixel maps to one engine unit when
// drawn.
func TextTexture(t *sprite.Text) (*sprite.Texture, error) {
	p, err := RenderText(t)
	if err != nil {
		return nil, err
	}
	return sprite.NewTextureRaw(p.Data(), p.Width(), p.Height(), 0, 0), nil
}
