// Package sprite provides the drawable components of the engine.
//
// A sprite is an entity with a drawable component (one of shape.Rect,
// shape.Circle, shape.Triangle, [Text], or [Texture]) and a
// shape.Point for position. The remaining components in this package
// tweak how the sprite is drawn:
//
//   - [Depth] orders sprites back to front; 0 hides the sprite.
//   - [Angle] rotates the sprite, in degrees.
//   - [Fill] switches shapes between filled and outlined.
//   - [StrokeWeight] sets the outline width for unfilled shapes.
//
// All of them are optional and default sensibly when absent.
package sprite

import "github.com/genji-engine/genji/store"

// Named registries for loaded assets.
type (
	FontStore    = store.Store[*Font]
	TextureStore = store.Store[*Texture]
)

// Component defaults, applied when an entity does not carry the
// corresponding component.
const (
	DefaultDepth        = Depth(1)
	DefaultStrokeWeight = StrokeWeight(4)
)

// Depth is the z-level of a sprite. Higher depths draw further back,
// and depth 0 hides the sprite entirely.
type Depth uint32

// Angle is the rotation of a sprite in degrees. Positive angles turn
// clockwise on screen.
type Angle float64

// Fill controls whether a shape sprite is filled or outlined. Sprites
// without a Fill component draw filled.
type Fill bool

// StrokeWeight is the outline width, in engine units, for shapes drawn
// with Fill(false).
type StrokeWeight uint32
