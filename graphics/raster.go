package graphics

import (
	"math"

	"github.com/genji-engine/genji/sprite"
)

// screenVertex is a pipeline vertex after the vertex stage: position
// in pixels, attributes ready for interpolation.
type screenVertex struct {
	x, y      float32
	color     [4]float32
	texCoords [2]float32
}

// Rasterize runs the shader pipeline on the CPU: transforms vertices
// by the model matrix, assembles primitives per the topology, and
// shades fragments into the pixmap. A non-nil texture switches the
// fragment stage from vertex color to texture sample times color.
//
// StrokeWeight is the line width in engine units for LineStrip
// topologies; filled topologies ignore it.
func Rasterize(p *Pixmap, verts []Vertex, topo Topology, mat Mat4, tex *sprite.Texture, strokeWeight uint32) {
	if len(verts) == 0 {
		return
	}

	screen := make([]screenVertex, len(verts))
	for i, v := range verts {
		cx, cy := mat.TransformXY(v.Position[0], v.Position[1])
		screen[i] = screenVertex{
			x:         (cx + 1) / 2 * float32(p.width),
			y:         (1 - cy) / 2 * float32(p.height),
			color:     v.Color,
			texCoords: v.TexCoords,
		}
	}

	switch topo {
	case TriangleStrip:
		for i := 0; i+2 < len(screen); i++ {
			fillTriangle(p, screen[i], screen[i+1], screen[i+2], tex)
		}
	case TriangleList:
		for i := 0; i+2 < len(screen); i += 3 {
			fillTriangle(p, screen[i], screen[i+1], screen[i+2], tex)
		}
	case LineStrip:
		// Stroke weight is in engine units; the window spans 400.
		halfPx := float32(strokeWeight) * float32(p.width) / 400 / 2
		if halfPx < 0.5 {
			halfPx = 0.5
		}
		for i := 0; i+1 < len(screen); i++ {
			strokeLine(p, screen[i], screen[i+1], halfPx, tex)
		}
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func fillTriangle(p *Pixmap, a, b, c screenVertex, tex *sprite.Texture) {
	area := edge(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}

	minX := int(math.Floor(float64(min3(a.x, b.x, c.x))))
	maxX := int(math.Ceil(float64(max3(a.x, b.x, c.x))))
	minY := int(math.Floor(float64(min3(a.y, b.y, c.y))))
	maxY := int(math.Ceil(float64(max3(a.y, b.y, c.y))))

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, p.width-1)
	maxY = min(maxY, p.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			// Barycentric weights, sign-normalized so winding does
			// not matter.
			wa := edge(b.x, b.y, c.x, c.y, px, py) / area
			wb := edge(c.x, c.y, a.x, a.y, px, py) / area
			wc := edge(a.x, a.y, b.x, b.y, px, py) / area
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}

			frag := screenVertex{
				color: [4]float32{
					wa*a.color[0] + wb*b.color[0] + wc*c.color[0],
					wa*a.color[1] + wb*b.color[1] + wc*c.color[1],
					wa*a.color[2] + wb*b.color[2] + wc*c.color[2],
					wa*a.color[3] + wb*b.color[3] + wc*c.color[3],
				},
				texCoords: [2]float32{
					wa*a.texCoords[0] + wb*b.texCoords[0] + wc*c.texCoords[0],
					wa*a.texCoords[1] + wb*b.texCoords[1] + wc*c.texCoords[1],
				},
			}
			p.BlendPixel(x, y, shade(frag, tex))
		}
	}
}

// strokeLine draws a segment as a quad extruded along the segment
// normal, carrying each endpoint's attributes along its edge.
func strokeLine(p *Pixmap, a, b screenVertex, halfPx float32, tex *sprite.Texture) {
	dx := b.x - a.x
	dy := b.y - a.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx := -dy / l * halfPx
	ny := dx / l * halfPx

	a0 := a
	a0.x += nx
	a0.y += ny
	a1 := a
	a1.x -= nx
	a1.y -= ny
	b0 := b
	b0.x += nx
	b0.y += ny
	b1 := b
	b1.x -= nx
	b1.y -= ny

	fillTriangle(p, a0, b0, a1, tex)
	fillTriangle(p, a1, b0, b1, tex)
}

// shade is the fragment stage: vertex color alone, or the texture
// sample multiplied by it.
func shade(frag screenVertex, tex *sprite.Texture) [4]float32 {
	if tex == nil {
		return frag.color
	}

	// Texture coordinate origin is bottom-left; pixel rows start at
	// the top.
	u := clamp01(frag.texCoords[0])
	v := clamp01(frag.texCoords[1])
	tx := int(u * float32(tex.SrcW-1))
	ty := int((1 - v) * float32(tex.SrcH-1))

	r, g, b, a := tex.At(tx, ty)
	return [4]float32{
		float32(r) / 255 * frag.color[0],
		float32(g) / 255 * frag.color[1],
		float32(b) / 255 * frag.color[2],
		float32(a) / 255 * frag.color[3],
	}
}

func min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

func max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}
