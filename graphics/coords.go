package graphics

import "math"

// Coord converts an engine coordinate to a clip-space coordinate.
// Engine unit 200 is one clip unit, so a 400-unit half-width spans a
// square window.
func Coord(x int) float32 {
	return float32(x) / 200
}

// Coords converts an engine coordinate pair to clip space.
func Coords(x, y int) [2]float32 {
	return [2]float32{Coord(x), Coord(y)}
}

// PxCoord converts a pixel distance to engine units, given the window
// dimension the pixels span. The full dimension covers 400 engine
// units.
func PxCoord(px float64, dim int) int {
	if dim == 0 {
		return 0
	}
	return int(math.Round(px * 400 / float64(dim)))
}

// MouseCoords converts a cursor position in window pixels (origin
// top-left, y down) to engine coordinates (origin center, y up).
func MouseCoords(px, py float64, w, h int) (x, y int) {
	return PxCoord(px-float64(w)/2, w), PxCoord(float64(h)/2-py, h)
}
