package genji

import (
	"testing"

	"github.com/edwinsyarief/lazyecs"

	"github.com/genji-engine/genji/graphics"
	"github.com/genji-engine/genji/shape"
	"github.com/genji-engine/genji/sprite"
)

func newWorld(t *testing.T) *lazyecs.World {
	t.Helper()
	RegisterComponents()
	return lazyecs.NewWorld()
}

func spawn(w *lazyecs.World, pos shape.Point, comps ...func(*lazyecs.World, lazyecs.Entity)) lazyecs.Entity {
	e := w.CreateEntity()
	lazyecs.SetComponent(w, e, pos)
	for _, set := range comps {
		set(w, e)
	}
	return e
}

func with[C any](c C) func(*lazyecs.World, lazyecs.Entity) {
	return func(w *lazyecs.World, e lazyecs.Entity) {
		lazyecs.SetComponent(w, e, c)
	}
}

func TestCollectSpritesDefaults(t *testing.T) {
	w := newWorld(t)
	spawn(w, shape.Pt(10, -20), with(shape.NewRect(40, 40)))

	items := collectSprites(w)
	if len(items) != 1 {
		t.Fatalf("collected %d sprites, want 1", len(items))
	}

	item := items[0]
	if item.kind != rectKind {
		t.Errorf("kind = %v, want rect", item.kind)
	}
	if item.data.X != 10 || item.data.Y != -20 {
		t.Errorf("position = (%d,%d), want (10,-20)", item.data.X, item.data.Y)
	}
	if item.data.Depth != uint32(sprite.DefaultDepth) {
		t.Errorf("depth = %d, want default", item.data.Depth)
	}
	if !item.data.Fill {
		t.Error("sprites without a Fill component draw filled")
	}
	if item.data.Color != White.Floats() {
		t.Errorf("color = %v, want white", item.data.Color)
	}
	if item.data.StrokeWeight != uint32(sprite.DefaultStrokeWeight) {
		t.Errorf("stroke weight = %d, want default", item.data.StrokeWeight)
	}
}

func TestCollectSpritesComponents(t *testing.T) {
	w := newWorld(t)
	spawn(w, shape.Pt(0, 0),
		with(shape.NewCircle(25)),
		with(sprite.Angle(45)),
		with(sprite.Depth(7)),
		with(sprite.Fill(false)),
		with(sprite.StrokeWeight(2)),
		with(Red),
	)

	items := collectSprites(w)
	if len(items) != 1 {
		t.Fatalf("collected %d sprites, want 1", len(items))
	}

	data := items[0].data
	if data.Angle != 45 {
		t.Errorf("angle = %v, want 45", data.Angle)
	}
	if data.Depth != 7 {
		t.Errorf("depth = %d, want 7", data.Depth)
	}
	if data.Fill {
		t.Error("fill should be off")
	}
	if data.StrokeWeight != 2 {
		t.Errorf("stroke weight = %d, want 2", data.StrokeWeight)
	}
	if data.Color != Red.Floats() {
		t.Errorf("color = %v, want red", data.Color)
	}
}

func TestCollectSpritesOrder(t *testing.T) {
	w := newWorld(t)
	spawn(w, shape.Pt(0, 0), with(shape.NewRect(10, 10)), with(sprite.Depth(1)))
	spawn(w, shape.Pt(0, 0), with(shape.NewCircle(10)), with(sprite.Depth(9)))
	spawn(w, shape.Pt(0, 0), with(shape.NewTriangle(10, 10, 0)), with(sprite.Depth(5)))
	spawn(w, shape.Pt(0, 0), with(shape.NewRect(10, 10)), with(sprite.Depth(0)))

	items := collectSprites(w)
	if len(items) != 3 {
		t.Fatalf("collected %d sprites, want 3 (depth 0 hides)", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].data.Depth < items[i].data.Depth {
			t.Fatalf("items out of order: depth %d before %d",
				items[i-1].data.Depth, items[i].data.Depth)
		}
	}
}

func TestCollectSpritesNeedsPosition(t *testing.T) {
	w := newWorld(t)
	e := w.CreateEntity()
	lazyecs.SetComponent(w, e, shape.NewRect(10, 10))

	if items := collectSprites(w); len(items) != 0 {
		t.Errorf("collected %d sprites, want 0 without a position", len(items))
	}
}

func TestDrawWorld(t *testing.T) {
	w := newWorld(t)
	spawn(w, shape.Pt(0, 0), with(shape.NewRect(100, 100)), with(Red))

	frame := graphics.NewFrame(100, 100)
	drawWorld(frame, w)

	// A 100-unit rect on a 100px window covers the center quarter.
	r, _, _, a := frame.Pixmap().At(50, 50).RGBA()
	if r == 0 || a == 0 {
		t.Error("center pixel should be red")
	}
	if _, _, _, a := frame.Pixmap().At(5, 5).RGBA(); a != 0 {
		t.Error("corner pixel should stay transparent")
	}
}

func TestDrawWorldHiddenSprite(t *testing.T) {
	w := newWorld(t)
	spawn(w, shape.Pt(0, 0), with(shape.NewRect(100, 100)), with(sprite.Depth(0)))

	frame := graphics.NewFrame(100, 100)
	drawWorld(frame, w)

	if _, _, _, a := frame.Pixmap().At(50, 50).RGBA(); a != 0 {
		t.Error("depth 0 sprite must not draw")
	}
}
