// Package graphics renders sprites.
//
// The engine drives this package; games rarely call it directly. Each
// frame the engine collects the sprite components from the world,
// sorts them by depth, and hands them to a [Frame], which rasterizes
// them into an RGBA pixmap that is then uploaded to the window's GPU
// texture.
//
// Geometry flows through the same stages a GPU pipeline would use:
// sprites expand to vertex lists in clip space, a model matrix places
// and rotates them, and a fill rule turns them into pixels. The WGSL
// sources for the GPU versions of those stages live in shaders/ and
// compile through naga; see [ShaderSet].
//
// Coordinates are engine units: the origin is the window center, y
// grows upward, and [Coord] maps unit 200 to one clip-space unit.
package graphics

// SpriteData is the per-sprite state gathered from an entity's
// components, with defaults filled in for components the entity does
// not carry.
type SpriteData struct {
	X, Y         int
	Depth        uint32
	Angle        float32
	Fill         bool
	StrokeWeight uint32
	Color        [4]float32
}

// NewSpriteData returns sprite data with the component defaults:
// origin position, depth 1, no rotation, filled, stroke weight 4,
// opaque white.
func NewSpriteData() SpriteData {
	return SpriteData{
		Depth:        1,
		Fill:         true,
		StrokeWeight: 4,
		Color:        [4]float32{1, 1, 1, 1},
	}
}
