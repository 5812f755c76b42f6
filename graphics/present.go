package graphics

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Presenter errors.
var (
	// ErrPresenterClosed is returned when presenting after Close.
	ErrPresenterClosed = errors.New("graphics: presenter is closed")

	// ErrNoTextureCreator means the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("graphics: draw context has no texture creator")
)

// textureDestroyer matches the window texture's Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads a frame's pixmap to a window texture and draws it.
// The texture is created lazily on first present and recreated when
// the frame size changes; the old texture's destruction is deferred
// until after the replacement upload, when in-flight GPU work no
// longer references it.
//
// A Presenter is not safe for concurrent use.
type Presenter struct {
	texture    any
	oldTexture any
	width      int
	height     int
	closed     bool
}

// NewPresenter creates an idle presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present uploads the pixmap and draws it covering the window. The dc
// parameter comes from gogpu.Context.AsTextureDrawer().
func (p *Presenter) Present(dc gpucontext.TextureDrawer, pix *Pixmap) error {
	if p.closed {
		return ErrPresenterClosed
	}

	if pix.Width() != p.width || pix.Height() != p.height {
		if p.oldTexture != nil {
			if d, ok := p.oldTexture.(textureDestroyer); ok {
				d.Destroy()
			}
		}
		p.oldTexture = p.texture
		p.texture = nil
		p.width = pix.Width()
		p.height = pix.Height()
	}

	if p.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		// NewTextureFromRGBA waits for the GPU internally, so the
		// deferred texture is safe to destroy afterwards.
		tex, err := creator.NewTextureFromRGBA(pix.Width(), pix.Height(), pix.Data())
		if err != nil {
			return fmt.Errorf("graphics: create window texture: %w", err)
		}
		p.texture = tex

		if p.oldTexture != nil {
			if d, ok := p.oldTexture.(textureDestroyer); ok {
				d.Destroy()
			}
			p.oldTexture = nil
		}
	} else if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(pix.Data()); err != nil {
			return fmt.Errorf("graphics: update window texture: %w", err)
		}
	}

	tex, ok := p.texture.(gpucontext.Texture)
	if !ok {
		return ErrNoTextureCreator
	}
	return dc.DrawTexture(tex, 0, 0)
}

// Close destroys any textures the presenter holds. Close is
// idempotent.
func (p *Presenter) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, t := range []any{p.oldTexture, p.texture} {
		if d, ok := t.(textureDestroyer); ok {
			d.Destroy()
		}
	}
	p.oldTexture, p.texture = nil, nil
}
