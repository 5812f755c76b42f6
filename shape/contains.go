package shape

import "math"

// Contains tests whether a point lies inside a shape drawn at a given
// position and angle. Implemented by Rect, Circle, Triangle, and by
// sprite textures.
type Contains interface {
	// Contains reports whether point is inside the shape when the
	// shape sits at pos rotated by angle degrees.
	Contains(pos, point Point, angle float64) bool
}

// pivot rotates point by angle degrees around center.
func pivot(point Point, angle float64, center Point) Point {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := float64(point.X - center.X)
	dy := float64(point.Y - center.Y)
	return Point{
		X: int(math.Round(dx*cos-dy*sin)) + center.X,
		Y: int(math.Round(dx*sin+dy*cos)) + center.Y,
	}
}

// Unrotate maps a world point into the local frame of a shape rotated
// by angle degrees around pos, so containment tests only ever deal
// with axis-aligned geometry.
func Unrotate(pos, point Point, angle float64) Point {
	if angle == 0 {
		return point
	}
	return pivot(point, angle, pos)
}

// Contains implements [Contains] for circles. Rotation is a no-op for
// a circle but accepted for interface symmetry.
func (c Circle) Contains(pos, point Point, _ float64) bool {
	return pos.Sub(point).Len() < float64(c.R)
}

// Contains implements [Contains] for rectangles.
func (r Rect) Contains(pos, point Point, angle float64) bool {
	point = Unrotate(pos, point, angle)
	minX, maxX := pos.X-r.W/2, pos.X+r.W/2
	minY, maxY := pos.Y-r.H/2, pos.Y+r.H/2
	return minX <= point.X && point.X <= maxX && minY <= point.Y && point.Y <= maxY
}

// orientation reports whether c lies counter-clockwise of the edge ab.
func orientation(a, b, c Point) bool {
	return b.Sub(a).Cross(c.Sub(a)) > 0
}

// Contains implements [Contains] for triangles.
func (t Triangle) Contains(pos, point Point, angle float64) bool {
	point = Unrotate(pos, point, angle)
	a, b, c := t.Points(pos)
	return orientation(a, b, point) && orientation(b, c, point) && orientation(c, a, point)
}
