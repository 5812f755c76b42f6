package sprite

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"os"

	// Image formats textures can be decoded from.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/genji-engine/genji/shape"
)

// Texture is an image sprite. Pix holds non-premultiplied RGBA pixels,
// row-major, SrcW by SrcH. W and H are the on-screen dimensions in
// engine units, which need not match the pixel dimensions.
type Texture struct {
	Pix        []uint8
	SrcW, SrcH int
	W, H       int
}

// NewTexture decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF, or
// WebP) into a texture.
//
// W and h work like HTML image dimensions: pass 0 for either to derive
// it from the other while keeping the image's aspect ratio, or 0 for
// both to draw at one engine unit per pixel.
func NewTexture(data []byte, w, h int) (*Texture, error) {
	return decodeTexture(bytes.NewReader(data), w, h)
}

// TextureFromFile reads and decodes an image file into a texture. W
// and h behave as in [NewTexture].
func TextureFromFile(path string, w, h int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: open texture: %w", err)
	}
	defer f.Close()
	return decodeTexture(f, w, h)
}

// NewTextureRaw wraps raw RGBA pixel data as a texture without
// validation. Pix must hold srcW*srcH*4 bytes; short data shows up as
// a draw-time error, not here.
func NewTextureRaw(pix []uint8, srcW, srcH, w, h int) *Texture {
	w, h = fitSize(srcW, srcH, w, h)
	return &Texture{Pix: pix, SrcW: srcW, SrcH: srcH, W: w, H: h}
}

func decodeTexture(r io.Reader, w, h int) (*Texture, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode texture: %w", err)
	}

	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	w, h = fitSize(b.Dx(), b.Dy(), w, h)
	return &Texture{
		Pix:  nrgba.Pix,
		SrcW: b.Dx(),
		SrcH: b.Dy(),
		W:    w,
		H:    h,
	}, nil
}

// fitSize resolves on-screen dimensions from the source pixel
// dimensions. A zero w or h is derived from the other side, keeping
// the aspect ratio; both zero keeps the pixel dimensions.
func fitSize(srcW, srcH, w, h int) (int, int) {
	switch {
	case w <= 0 && h <= 0:
		return srcW, srcH
	case w <= 0:
		return int(math.Round(float64(srcW) * float64(h) / float64(srcH))), h
	case h <= 0:
		return w, int(math.Round(float64(srcH) * float64(w) / float64(srcW)))
	default:
		return w, h
	}
}

// At samples the pixel at (x, y), non-premultiplied. Out-of-bounds
// coordinates and short pixel data sample transparent black.
func (t *Texture) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= t.SrcW || y >= t.SrcH {
		return 0, 0, 0, 0
	}
	i := (y*t.SrcW + x) * 4
	if i+3 >= len(t.Pix) {
		return 0, 0, 0, 0
	}
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]
}

// Contains implements shape.Contains using the texture's on-screen
// bounding rectangle. Unlike shape.Rect, the boundary itself is
// outside.
func (t *Texture) Contains(pos, point shape.Point, angle float64) bool {
	point = shape.Unrotate(pos, point, angle)
	return pos.X-t.W/2 < point.X && point.X < pos.X+t.W/2 &&
		pos.Y-t.H/2 < point.Y && point.Y < pos.Y+t.H/2
}
