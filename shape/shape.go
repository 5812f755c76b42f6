// Package shape provides the engine's geometric primitives.
//
// Rect, Circle, and Triangle are sprite components: attach one of them
// plus a [Point] to an entity and the engine draws it. The package also
// provides point-inclusion tests through the [Contains] interface,
// which all shapes implement.
package shape

import "math"

// Point is a 2D integer vector, usually positional. Attached to an
// entity it positions the entity's sprite; without one the sprite is
// not drawn.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by an integer factor.
func (p Point) Scale(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by an integer factor.
func (p Point) Div(s int) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}

// Len returns the length of the vector.
func (p Point) Len() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Norm returns a unit-length version of the vector as floats, since
// normalization with integers doesn't work so well. The zero vector
// normalizes to (0, 0).
func (p Point) Norm() (x, y float64) {
	l := p.Len()
	if l == 0 {
		return 0, 0
	}
	return float64(p.X) / l, float64(p.Y) / l
}

// Rect is a rectangle shape, W by H engine units, centered on the
// entity's Point.
type Rect struct {
	W, H int
}

// NewRect creates a Rect.
func NewRect(w, h int) Rect {
	return Rect{W: w, H: h}
}

// Circle is a circle shape with radius R, centered on the entity's
// Point.
type Circle struct {
	R int
}

// NewCircle creates a Circle.
func NewCircle(r int) Circle {
	return Circle{R: r}
}

// Triangle is an isoceles-ish triangle: a base of width W centered on
// the entity's Point, a tip H units above it, offset O units
// horizontally.
type Triangle struct {
	W, H, O int
}

// NewTriangle creates a Triangle.
func NewTriangle(w, h, o int) Triangle {
	return Triangle{W: w, H: h, O: o}
}

// Points returns the triangle's three corners for a sprite at pos:
// base left, base right, tip.
func (t Triangle) Points(pos Point) (a, b, c Point) {
	w := t.W / 2
	h := t.H / 2
	a = Point{X: pos.X - w, Y: pos.Y - h}
	b = Point{X: pos.X + w, Y: pos.Y - h}
	c = Point{X: pos.X + t.O, Y: pos.Y + h}
	return a, b, c
}
