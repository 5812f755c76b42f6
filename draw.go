package genji

import (
	"sort"

	"github.com/edwinsyarief/lazyecs"

	"github.com/genji-engine/genji/graphics"
	"github.com/genji-engine/genji/internal/logging"
	"github.com/genji-engine/genji/shape"
	"github.com/genji-engine/genji/sprite"
)

// RegisterComponents registers every engine component type with the
// ECS. Run calls it before the first frame; games that build queries
// over engine components during init may call it themselves first.
// Registration is idempotent.
func RegisterComponents() {
	lazyecs.RegisterComponent[shape.Point]()
	lazyecs.RegisterComponent[shape.Rect]()
	lazyecs.RegisterComponent[shape.Circle]()
	lazyecs.RegisterComponent[shape.Triangle]()
	lazyecs.RegisterComponent[sprite.Text]()
	lazyecs.RegisterComponent[sprite.Texture]()
	lazyecs.RegisterComponent[sprite.Angle]()
	lazyecs.RegisterComponent[sprite.Depth]()
	lazyecs.RegisterComponent[sprite.Fill]()
	lazyecs.RegisterComponent[sprite.StrokeWeight]()
	lazyecs.RegisterComponent[Color]()
}

type spriteKind uint8

const (
	rectKind spriteKind = iota
	circleKind
	triangleKind
	textKind
	textureKind
)

// drawItem is one sprite lifted out of the world, ready to sort and
// draw. The shape fields are copies; storage pointers from queries do
// not outlive iteration.
type drawItem struct {
	kind spriteKind
	data graphics.SpriteData

	rect     shape.Rect
	circle   shape.Circle
	triangle shape.Triangle
	text     sprite.Text
	texture  sprite.Texture
}

// spriteData gathers the optional sprite components of an entity,
// defaulting any the entity does not carry.
func spriteData(w *lazyecs.World, e lazyecs.Entity, pos shape.Point) graphics.SpriteData {
	data := graphics.NewSpriteData()
	data.X = pos.X
	data.Y = pos.Y

	if angle, ok := lazyecs.GetComponent[sprite.Angle](w, e); ok {
		data.Angle = float32(*angle)
	}
	if col, ok := lazyecs.GetComponent[Color](w, e); ok {
		data.Color = col.Floats()
	}
	if depth, ok := lazyecs.GetComponent[sprite.Depth](w, e); ok {
		data.Depth = uint32(*depth)
	}
	if fill, ok := lazyecs.GetComponent[sprite.Fill](w, e); ok {
		data.Fill = bool(*fill)
	}
	if sw, ok := lazyecs.GetComponent[sprite.StrokeWeight](w, e); ok {
		data.StrokeWeight = uint32(*sw)
	}
	return data
}

// collectSprites queries the world for every positioned sprite. A
// sprite component without a Point is not drawn.
func collectSprites(w *lazyecs.World) []drawItem {
	var items []drawItem

	rects := lazyecs.CreateQuery2[shape.Rect, shape.Point](w)
	for rects.Next() {
		r, p := rects.Get()
		items = append(items, drawItem{
			kind: rectKind,
			rect: *r,
			data: spriteData(w, rects.Entity(), *p),
		})
	}

	circles := lazyecs.CreateQuery2[shape.Circle, shape.Point](w)
	for circles.Next() {
		c, p := circles.Get()
		items = append(items, drawItem{
			kind:   circleKind,
			circle: *c,
			data:   spriteData(w, circles.Entity(), *p),
		})
	}

	triangles := lazyecs.CreateQuery2[shape.Triangle, shape.Point](w)
	for triangles.Next() {
		tr, p := triangles.Get()
		items = append(items, drawItem{
			kind:     triangleKind,
			triangle: *tr,
			data:     spriteData(w, triangles.Entity(), *p),
		})
	}

	texts := lazyecs.CreateQuery2[sprite.Text, shape.Point](w)
	for texts.Next() {
		txt, p := texts.Get()
		items = append(items, drawItem{
			kind: textKind,
			text: *txt,
			data: spriteData(w, texts.Entity(), *p),
		})
	}

	textures := lazyecs.CreateQuery2[sprite.Texture, shape.Point](w)
	for textures.Next() {
		tex, p := textures.Get()
		items = append(items, drawItem{
			kind:    textureKind,
			texture: *tex,
			data:    spriteData(w, textures.Entity(), *p),
		})
	}

	// Back to front; depth 0 hides the sprite entirely.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].data.Depth > items[j].data.Depth
	})
	for len(items) > 0 && items[len(items)-1].data.Depth == 0 {
		items = items[:len(items)-1]
	}
	return items
}

// drawWorld renders every visible sprite in the world into the frame.
func drawWorld(f *graphics.Frame, w *lazyecs.World) {
	for _, item := range collectSprites(w) {
		switch item.kind {
		case rectKind:
			f.DrawRect(item.rect, item.data)
		case circleKind:
			f.DrawCircle(item.circle, item.data)
		case triangleKind:
			f.DrawTriangle(item.triangle, item.data)
		case textKind:
			if err := f.DrawText(&item.text, item.data); err != nil {
				logging.Logger().Error("text sprite dropped", "text", item.text.Str, "err", err)
			}
		case textureKind:
			f.DrawTexture(&item.texture, item.data)
		}
	}
}
