package shape

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := a.Scale(2); got != Pt(6, 8) {
		t.Errorf("Scale = %v, want (6,8)", got)
	}
	if got := a.Div(2); got != Pt(1, 2) {
		t.Errorf("Div = %v, want (1,2)", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %d, want -10", got)
	}
}

func TestPointLen(t *testing.T) {
	if got := Pt(3, 4).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}

	x, y := Pt(0, 10).Norm()
	if x != 0 || y != 1 {
		t.Errorf("Norm = (%v, %v), want (0, 1)", x, y)
	}

	// Zero vector must not NaN.
	x, y = Pt(0, 0).Norm()
	if x != 0 || y != 0 {
		t.Errorf("zero Norm = (%v, %v), want (0, 0)", x, y)
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(10)
	pos := Pt(100, 100)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center", Pt(100, 100), true},
		{"inside", Pt(105, 105), true},
		{"on edge", Pt(110, 100), false},
		{"outside", Pt(120, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(pos, tt.point, 0); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(20, 10)
	pos := Pt(0, 0)

	tests := []struct {
		name  string
		point Point
		angle float64
		want  bool
	}{
		{"center", Pt(0, 0), 0, true},
		{"corner", Pt(10, 5), 0, true},
		{"outside x", Pt(11, 0), 0, false},
		{"outside y", Pt(0, 6), 0, false},
		// Rotated 90 degrees the long axis is vertical.
		{"rotated inside", Pt(0, 9), 90, true},
		{"rotated outside", Pt(9, 0), 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(pos, tt.point, tt.angle); got != tt.want {
				t.Errorf("Contains(%v, angle=%v) = %v, want %v", tt.point, tt.angle, got, tt.want)
			}
		})
	}
}

func TestTriangleContains(t *testing.T) {
	// Base 20 wide at y=-5, tip at (0, 5).
	tri := NewTriangle(20, 10, 0)
	pos := Pt(0, 0)

	if !tri.Contains(pos, Pt(0, 0), 0) {
		t.Error("centroid should be inside")
	}
	if tri.Contains(pos, Pt(0, 6), 0) {
		t.Error("above tip should be outside")
	}
	if tri.Contains(pos, Pt(-10, 4), 0) {
		t.Error("outside the slanted edge should be outside")
	}
}

func TestTrianglePoints(t *testing.T) {
	tri := NewTriangle(12, 34, 8)
	a, b, c := tri.Points(Pt(0, 0))

	if a != Pt(-6, -17) || b != Pt(6, -17) || c != Pt(8, 17) {
		t.Errorf("Points = %v %v %v", a, b, c)
	}
}

func TestPivotFullTurn(t *testing.T) {
	p := Pt(10, 0)
	got := pivot(p, 360, Pt(0, 0))
	if math.Abs(float64(got.X-10)) > 1 || got.Y != 0 {
		t.Errorf("full turn moved point to %v", got)
	}
}
