package sprite

import (
	"errors"
	"fmt"
)

// Spritemap errors.
var (
	// ErrSpritemapGrid means the image dimensions do not divide evenly
	// into the requested cell size.
	ErrSpritemapGrid = errors.New("sprite: image does not divide into cells")

	// ErrSpritemapBounds means a requested cell or region lies outside
	// the spritemap.
	ErrSpritemapBounds = errors.New("sprite: region outside spritemap")
)

// Spritemap is a texture atlas divided into a grid of fixed-size
// cells. [Spritemap.ByID] retrieves cells by index; arbitrarily placed
// regions are available through [Spritemap.SubRect].
//
// Retrieving a sprite copies its pixels out of the atlas, so the
// returned textures are independent of the map.
type Spritemap struct {
	tex *Texture

	cellW, cellH int
	cols, rows   int
}

// NewSpritemap decodes an encoded image and divides it into cellW by
// cellH cells. Returns [ErrSpritemapGrid] if the image dimensions do
// not divide evenly.
func NewSpritemap(data []byte, cellW, cellH int) (*Spritemap, error) {
	tex, err := NewTexture(data, 0, 0)
	if err != nil {
		return nil, err
	}
	return newSpritemap(tex, cellW, cellH)
}

// SpritemapFromFile reads and decodes an image file into a spritemap.
func SpritemapFromFile(path string, cellW, cellH int) (*Spritemap, error) {
	tex, err := TextureFromFile(path, 0, 0)
	if err != nil {
		return nil, err
	}
	return newSpritemap(tex, cellW, cellH)
}

func newSpritemap(tex *Texture, cellW, cellH int) (*Spritemap, error) {
	if cellW <= 0 || cellH <= 0 || tex.SrcW%cellW != 0 || tex.SrcH%cellH != 0 {
		return nil, fmt.Errorf("%w: %dx%d image, %dx%d cells",
			ErrSpritemapGrid, tex.SrcW, tex.SrcH, cellW, cellH)
	}
	return &Spritemap{
		tex:   tex,
		cellW: cellW,
		cellH: cellH,
		cols:  tex.SrcW / cellW,
		rows:  tex.SrcH / cellH,
	}, nil
}

// Cells returns the number of cells in the map.
func (s *Spritemap) Cells() int {
	return s.cols * s.rows
}

// ByID copies cell id out of the map as a texture. Cells are numbered
// left to right, top to bottom, starting at 0. W and h behave as in
// [NewTexture].
func (s *Spritemap) ByID(id, w, h int) (*Texture, error) {
	if id < 0 || id >= s.Cells() {
		return nil, fmt.Errorf("%w: cell %d of %d", ErrSpritemapBounds, id, s.Cells())
	}
	x := (id % s.cols) * s.cellW
	y := (id / s.cols) * s.cellH
	return NewTextureRaw(s.copyRect(x, y, s.cellW, s.cellH), s.cellW, s.cellH, w, h), nil
}

// SubRect copies an arbitrary pixel region out of the map as a
// texture, ignoring the cell grid. Tw and th behave as w and h in
// [NewTexture].
func (s *Spritemap) SubRect(x, y, w, h, tw, th int) (*Texture, error) {
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > s.tex.SrcW || y+h > s.tex.SrcH {
		return nil, fmt.Errorf("%w: %dx%d at (%d, %d)", ErrSpritemapBounds, w, h, x, y)
	}
	return NewTextureRaw(s.copyRect(x, y, w, h), w, h, tw, th), nil
}

func (s *Spritemap) copyRect(x, y, w, h int) []uint8 {
	pix := make([]uint8, 0, w*h*4)
	for yy := y; yy < y+h; yy++ {
		row := (yy*s.tex.SrcW + x) * 4
		pix = append(pix, s.tex.Pix[row:row+w*4]...)
	}
	return pix
}
