package sprite

// Text is a text sprite. The engine rasterizes it with Font at Size
// pixels each time it is drawn, so Str may change between frames.
//
// Newlines start a new line. The sprite's Color component tints the
// glyphs; without one the text draws white.
type Text struct {
	Str  string
	Font *Font
	Size float64
}

// NewText creates a text sprite.
func NewText(str string, font *Font, size float64) *Text {
	return &Text{Str: str, Font: font, Size: size}
}

// TextFromFile creates a text sprite, loading its font from a TTF or
// OTF file.
func TextFromFile(str, fontPath string, size float64) (*Text, error) {
	font, err := FontFromFile(fontPath)
	if err != nil {
		return nil, err
	}
	return &Text{Str: str, Font: font, Size: size}, nil
}
