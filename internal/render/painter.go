//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a view's pixels into a single image and draws it scaled.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for an image of size w*h.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit uploads pixels into the painter image and draws it. A nil or
// mismatched slice draws a cleared image.
func (p *Painter) Blit(dst *ebiten.Image, pixels []color.NRGBA, scale int) {
	if !FillRGBA(p.buf, pixels) {
		clearRGBA(p.buf)
	}
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Resize reallocates the backing image when the view dimensions change.
func (p *Painter) Resize(w, h int) {
	if w == p.w && h == p.h {
		return
	}
	p.img.Dispose()
	p.w, p.h = w, h
	p.buf = make([]byte, 4*w*h)
	p.img = ebiten.NewImage(w, h)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
