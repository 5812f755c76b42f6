package graphics

import (
	"github.com/genji-engine/genji/shape"
	"github.com/genji-engine/genji/sprite"
)

// Frame is one frame's render target. The engine draws every visible
// sprite into it back to front, then uploads its pixmap to the window
// texture.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	pix *Pixmap
}

// NewFrame creates a frame with a transparent pixmap of the given
// pixel dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{pix: NewPixmap(width, height)}
}

// Resize replaces the pixmap when the window size changes. A no-op if
// the dimensions already match.
func (f *Frame) Resize(width, height int) {
	if width == f.pix.width && height == f.pix.height {
		return
	}
	f.pix = NewPixmap(width, height)
}

// Pixmap returns the frame's pixel buffer.
func (f *Frame) Pixmap() *Pixmap {
	return f.pix
}

// Size returns the frame's pixel dimensions.
func (f *Frame) Size() (width, height int) {
	return f.pix.width, f.pix.height
}

// Clear fills the frame with a color.
func (f *Frame) Clear(c [4]float32) {
	f.pix.Clear(c)
}

// aspect is the x-axis correction applied by the model matrix so
// engine units stay square on non-square windows.
func (f *Frame) aspect() float32 {
	if f.pix.width == 0 {
		return 1
	}
	return float32(f.pix.height) / float32(f.pix.width)
}

// DrawRect draws a rectangle sprite.
func (f *Frame) DrawRect(r shape.Rect, data SpriteData) {
	if data.Depth == 0 {
		return
	}
	verts, topo := RectVertices(r.W, r.H, data.Color, data.Fill)
	Rasterize(f.pix, verts, topo, Model(data, f.aspect()), nil, data.StrokeWeight)
}

// DrawCircle draws a circle sprite.
func (f *Frame) DrawCircle(c shape.Circle, data SpriteData) {
	if data.Depth == 0 {
		return
	}
	verts, topo := CircleVertices(c.R, data.Color, data.Fill)
	Rasterize(f.pix, verts, topo, Model(data, f.aspect()), nil, data.StrokeWeight)
}

// DrawTriangle draws a triangle sprite. Triangles are always filled.
func (f *Frame) DrawTriangle(t shape.Triangle, data SpriteData) {
	if data.Depth == 0 {
		return
	}
	verts, topo := TriangleVertices(t.W, t.H, t.O, data.Color)
	Rasterize(f.pix, verts, topo, Model(data, f.aspect()), nil, data.StrokeWeight)
}

// DrawTexture draws a texture sprite at its on-screen dimensions, with
// the sprite color multiplied in. An unfilled texture draws only its
// outline.
func (f *Frame) DrawTexture(t *sprite.Texture, data SpriteData) {
	if data.Depth == 0 {
		return
	}
	verts, topo := QuadVertices(Coord(t.W)/2, Coord(t.H)/2, data.Color, data.Fill)
	var tex *sprite.Texture
	if data.Fill {
		tex = t
	}
	Rasterize(f.pix, verts, topo, Model(data, f.aspect()), tex, data.StrokeWeight)
}

// DrawText rasterizes and draws a text sprite, one engine unit per
// raster pixel, tinted by the sprite color.
func (f *Frame) DrawText(t *sprite.Text, data SpriteData) error {
	if data.Depth == 0 {
		return nil
	}
	tex, err := TextTexture(t)
	if err != nil {
		return err
	}
	f.DrawTexture(tex, data)
	return nil
}
