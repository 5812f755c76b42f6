package graphics

import "math"

// Vertex is the input to the shader pipeline: a clip-space position,
// an RGBA color, and texture coordinates. For untextured shapes the
// texture coordinates still carry the position within the sprite's
// bounding box.
type Vertex struct {
	Position  [2]float32
	Color     [4]float32
	TexCoords [2]float32
}

// Topology says how a vertex list forms primitives.
type Topology uint8

const (
	// TriangleStrip forms a triangle from each vertex and the two
	// before it.
	TriangleStrip Topology = iota
	// TriangleList forms a triangle from each group of three vertices.
	TriangleList
	// LineStrip forms a line from each vertex to the next.
	LineStrip
)

// RectVertices builds the vertex list for a w by h rectangle centered
// on the origin. Filled rects are a 4-vertex strip; outlines are a
// closed 5-vertex line strip.
func RectVertices(w, h int, color [4]float32, fill bool) ([]Vertex, Topology) {
	return quad(Coord(w)/2, Coord(h)/2, color, fill)
}

// QuadVertices builds the vertex list for a texture or text quad with
// the given clip-space half extents.
func QuadVertices(halfW, halfH float32, color [4]float32, fill bool) ([]Vertex, Topology) {
	return quad(halfW, halfH, color, fill)
}

func quad(w, h float32, color [4]float32, fill bool) ([]Vertex, Topology) {
	tl := Vertex{Position: [2]float32{-w, h}, TexCoords: [2]float32{0, 1}, Color: color}
	tr := Vertex{Position: [2]float32{w, h}, TexCoords: [2]float32{1, 1}, Color: color}
	bl := Vertex{Position: [2]float32{-w, -h}, TexCoords: [2]float32{0, 0}, Color: color}
	br := Vertex{Position: [2]float32{w, -h}, TexCoords: [2]float32{1, 0}, Color: color}

	if fill {
		return []Vertex{tl, tr, bl, br}, TriangleStrip
	}
	return []Vertex{tl, tr, br, bl, tl}, LineStrip
}

// CircleVertices builds the vertex list for a circle of radius r
// centered on the origin, as a fan of half-degree steps. Filled
// circles interleave center vertices at whole degrees so a strip
// covers the disc; outlines are the rim alone as a line strip.
func CircleVertices(r int, color [4]float32, fill bool) ([]Vertex, Topology) {
	rc := Coord(r)
	var vertices []Vertex

	for a := 0.0; a <= 360.0; a += 0.5 {
		sin, cos := math.Sincos(a * math.Pi / 180)
		pos := [2]float32{rc * float32(cos), rc * float32(sin)}
		vertices = append(vertices, Vertex{
			Position:  pos,
			Color:     color,
			TexCoords: [2]float32{pos[0] + 0.5, pos[1] + 0.5},
		})

		if fill && a == math.Trunc(a) {
			vertices = append(vertices, Vertex{
				Position:  [2]float32{0, 0},
				Color:     color,
				TexCoords: [2]float32{0.5, 0.5},
			})
		}
	}

	if fill {
		return vertices, TriangleStrip
	}
	return vertices, LineStrip
}

// TriangleVertices builds the vertex list for a triangle with a
// w-wide base centered below the origin and a tip h above it, offset o
// units horizontally.
func TriangleVertices(w, h, o int, color [4]float32) ([]Vertex, Topology) {
	hw := Coord(w) / 2
	hh := Coord(h) / 2
	oc := Coord(o)

	return []Vertex{
		{Position: [2]float32{-hw, -hh}, Color: color, TexCoords: [2]float32{0, 0}},
		{Position: [2]float32{hw, -hh}, Color: color, TexCoords: [2]float32{1, 0}},
		{Position: [2]float32{oc, hh}, Color: color, TexCoords: [2]float32{0.5, 1}},
	}, TriangleList
}
