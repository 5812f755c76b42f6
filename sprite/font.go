package sprite

import (
	"bytes"
	"fmt"
	"os"

	gotextfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TTF or OTF font, shared between any number of
// [Text] sprites. Fonts are read-only after parsing and safe for
// concurrent use.
type Font struct {
	data   []byte
	sfnt   *sfnt.Font
	family string
}

// LoadFont parses TTF or OTF font data.
func LoadFont(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprite: parse font: %w", err)
	}

	// The raster path above does not expose name tables in a useful
	// way, so the family comes from go-text's parser.
	family := ""
	if face, err := gotextfont.ParseTTF(bytes.NewReader(data)); err == nil {
		family = face.Describe().Family
	}

	return &Font{data: data, sfnt: f, family: family}, nil
}

// FontFromFile reads and parses a TTF or OTF font file.
func FontFromFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: read font: %w", err)
	}
	return LoadFont(data)
}

// Family returns the font's family name, or "" if the font does not
// name one.
func (f *Font) Family() string {
	return f.family
}

// Face creates a rasterizing face at the given pixel size. Faces are
// not safe for concurrent use; the engine creates them per draw.
func (f *Font) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("sprite: create face: %w", err)
	}
	return face, nil
}
