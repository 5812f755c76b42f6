package graphics

import (
	"math"
	"testing"

	"github.com/genji-engine/genji/shape"
	"github.com/genji-engine/genji/sprite"
)

func TestCoord(t *testing.T) {
	tests := []struct {
		x    int
		want float32
	}{
		{0, 0},
		{200, 1},
		{-200, -1},
		{100, 0.5},
		{400, 2},
	}
	for _, tt := range tests {
		if got := Coord(tt.x); got != tt.want {
			t.Errorf("Coord(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPxCoord(t *testing.T) {
	if got := PxCoord(320, 640); got != 200 {
		t.Errorf("PxCoord(320, 640) = %d, want 200", got)
	}
	if got := PxCoord(0, 0); got != 0 {
		t.Errorf("PxCoord with zero dim = %d, want 0", got)
	}
}

func TestMouseCoords(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   shape.Point
	}{
		{"center", 320, 240, shape.Pt(0, 0)},
		{"top left", 0, 0, shape.Pt(-200, 200)},
		{"bottom right", 640, 480, shape.Pt(200, -200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := MouseCoords(tt.px, tt.py, 640, 480)
			if x != tt.want.X || y != tt.want.Y {
				t.Errorf("MouseCoords = (%d, %d), want %v", x, y, tt.want)
			}
		})
	}
}

// An identity model matrix and identity perspective must pass clip
// positions through untouched with w=1.
func TestIdentityTransform(t *testing.T) {
	m := Identity().Mul(Identity())

	points := [][2]float32{{0, 0}, {1, 0}, {0, 1}, {-0.5, 0.25}}
	for _, p := range points {
		out := m.Transform([4]float32{p[0], p[1], 0, 1})
		if out[0] != p[0] || out[1] != p[1] || out[3] != 1 {
			t.Errorf("identity transform of %v = %v", p, out)
		}
	}
}

func TestModelDefaults(t *testing.T) {
	// Default sprite data on a square window only encodes depth.
	m := Model(NewSpriteData(), 1)

	x, y := m.TransformXY(0.5, -0.25)
	if x != 0.5 || y != -0.25 {
		t.Errorf("default model moved point to (%v, %v)", x, y)
	}
	if m[2][2] != 1.0/256 {
		t.Errorf("depth column = %v, want 1/256", m[2][2])
	}
}

func TestModelTranslation(t *testing.T) {
	data := NewSpriteData()
	data.X = 200
	data.Y = -100

	x, y := Model(data, 1).TransformXY(0, 0)
	if x != 1 || y != -0.5 {
		t.Errorf("translation = (%v, %v), want (1, -0.5)", x, y)
	}
}

func TestModelRotation(t *testing.T) {
	data := NewSpriteData()
	data.Angle = 90

	// Positive angles rotate the sprite clockwise on screen.
	x, y := Model(data, 1).TransformXY(1, 0)
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y+1)) > 1e-6 {
		t.Errorf("rotated point = (%v, %v), want (0, -1)", x, y)
	}
}

func TestModelAspect(t *testing.T) {
	x, y := Model(NewSpriteData(), 0.75).TransformXY(1, 1)
	if x != 0.75 || y != 1 {
		t.Errorf("aspect-corrected point = (%v, %v), want (0.75, 1)", x, y)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(640, 480)
	if m[0][0] <= 0 || m[1][1] <= 0 {
		t.Errorf("perspective diagonal = (%v, %v), want positive", m[0][0], m[1][1])
	}
	if got := m[0][0] / m[1][1]; math.Abs(float64(got-0.75)) > 1e-6 {
		t.Errorf("aspect ratio = %v, want 0.75", got)
	}
}

func TestLookAtIdentityDirection(t *testing.T) {
	m := LookAt([3]float32{0, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0})

	// Camera at origin looking down +z leaves points alone.
	out := m.Transform([4]float32{1, 2, 3, 1})
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("LookAt transform = %v, want (1, 2, 3, _)", out)
	}
}

func TestRectVertices(t *testing.T) {
	fill, topo := RectVertices(100, 50, [4]float32{1, 0, 0, 1}, true)
	if len(fill) != 4 || topo != TriangleStrip {
		t.Fatalf("fill = %d verts, topology %v", len(fill), topo)
	}
	if fill[0].Position != [2]float32{-0.25, 0.125} {
		t.Errorf("top left = %v, want (-0.25, 0.125)", fill[0].Position)
	}

	outline, topo := RectVertices(100, 50, [4]float32{1, 0, 0, 1}, false)
	if len(outline) != 5 || topo != LineStrip {
		t.Fatalf("outline = %d verts, topology %v", len(outline), topo)
	}
	if outline[0] != outline[4] {
		t.Error("outline should close its loop")
	}
}

func TestCircleVertices(t *testing.T) {
	outline, topo := CircleVertices(100, [4]float32{1, 1, 1, 1}, false)
	if topo != LineStrip {
		t.Errorf("outline topology = %v, want LineStrip", topo)
	}
	// Half-degree steps over a full turn, inclusive.
	if len(outline) != 721 {
		t.Errorf("outline verts = %d, want 721", len(outline))
	}

	fill, topo := CircleVertices(100, [4]float32{1, 1, 1, 1}, true)
	if topo != TriangleStrip {
		t.Errorf("fill topology = %v, want TriangleStrip", topo)
	}
	// One extra center vertex per whole degree.
	if len(fill) != 721+361 {
		t.Errorf("fill verts = %d, want %d", len(fill), 721+361)
	}
}

func TestTriangleVertices(t *testing.T) {
	verts, topo := TriangleVertices(100, 100, 50, [4]float32{1, 1, 1, 1})
	if len(verts) != 3 || topo != TriangleList {
		t.Fatalf("verts = %d, topology %v", len(verts), topo)
	}
	if verts[2].Position != [2]float32{0.25, 0.25} {
		t.Errorf("tip = %v, want (0.25, 0.25)", verts[2].Position)
	}
}

func TestPixmapBlend(t *testing.T) {
	p := NewPixmap(4, 4)

	p.BlendPixel(1, 1, [4]float32{1, 0, 0, 1})
	if got := p.Pixel(1, 1); got != [4]float32{1, 0, 0, 1} {
		t.Errorf("opaque blend = %v", got)
	}

	// 50% white over red keeps full alpha and averages color.
	p.BlendPixel(1, 1, [4]float32{1, 1, 1, 0.5})
	got := p.Pixel(1, 1)
	if got[3] != 1 {
		t.Errorf("alpha = %v, want 1", got[3])
	}
	if math.Abs(float64(got[1]-0.5)) > 0.01 {
		t.Errorf("green = %v, want ~0.5", got[1])
	}

	// Out of bounds must not panic.
	p.BlendPixel(-1, 99, [4]float32{1, 1, 1, 1})
}

func TestFrameDrawRect(t *testing.T) {
	f := NewFrame(100, 100)

	data := NewSpriteData()
	data.Color = [4]float32{1, 0, 0, 1}
	f.DrawRect(shape.NewRect(100, 100), data)

	// 100 engine units on a window spanning 400 is a quarter of the
	// frame, centered.
	if got := f.Pixmap().Pixel(50, 50); got != [4]float32{1, 0, 0, 1} {
		t.Errorf("center pixel = %v, want red", got)
	}
	if got := f.Pixmap().Pixel(10, 10); got[3] != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestFrameDepthZeroHides(t *testing.T) {
	f := NewFrame(50, 50)

	data := NewSpriteData()
	data.Depth = 0
	f.DrawRect(shape.NewRect(200, 200), data)

	if got := f.Pixmap().Pixel(25, 25); got[3] != 0 {
		t.Errorf("depth-0 sprite drew pixel %v", got)
	}
}

func TestFrameDrawCircle(t *testing.T) {
	f := NewFrame(100, 100)

	data := NewSpriteData()
	data.Color = [4]float32{0, 1, 0, 1}
	f.DrawCircle(shape.NewCircle(100), data)

	if got := f.Pixmap().Pixel(50, 50); got != [4]float32{0, 1, 0, 1} {
		t.Errorf("center pixel = %v, want green", got)
	}
	// Radius 100 units is a quarter of the frame; corners stay empty.
	if got := f.Pixmap().Pixel(2, 2); got[3] != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestFrameDrawTexture(t *testing.T) {
	f := NewFrame(100, 100)

	pix := make([]uint8, 2*2*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+2] = 255 // blue
		pix[i+3] = 255
	}
	tex := sprite.NewTextureRaw(pix, 2, 2, 100, 100)

	f.DrawTexture(tex, NewSpriteData())

	if got := f.Pixmap().Pixel(50, 50); got != [4]float32{0, 0, 1, 1} {
		t.Errorf("center pixel = %v, want blue", got)
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(10, 10)
	keep := f.Pixmap()

	f.Resize(10, 10)
	if f.Pixmap() != keep {
		t.Error("same-size resize should keep the pixmap")
	}

	f.Resize(20, 5)
	if w, h := f.Size(); w != 20 || h != 5 {
		t.Errorf("size = %dx%d, want 20x5", w, h)
	}
}

func TestRenderTextNoFont(t *testing.T) {
	if _, err := RenderText(&sprite.Text{Str: "hi"}); err == nil {
		t.Error("expected error for text without a font")
	}
}
