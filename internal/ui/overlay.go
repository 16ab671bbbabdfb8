//go:build ebiten

package ui

import (
	"image/color"

	"islandgen/internal/core"
	"islandgen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type heightFieldProvider interface {
	HeightField() *core.FloatGrid
}

type waterLevelProvider interface {
	WaterLevel() float64
}

// Overlay draws optional diagnostic layers on top of the view: key 1 toggles
// the elevation tint, key 2 the water mask.
type Overlay struct {
	view      core.View
	scale     int
	showElev  bool
	showWater bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(view core.View, scale int) *Overlay {
	return &Overlay{view: view, scale: scale}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWater = !o.showWater
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.view.(heightFieldProvider)
	if !ok {
		return
	}
	field := provider.HeightField()
	if field == nil {
		return
	}
	if o.showElev {
		o.drawLayer(screen, field, elevationLayer(field))
	}
	if o.showWater {
		if wl, ok := o.view.(waterLevelProvider); ok {
			o.drawLayer(screen, field, waterLayer(field, wl.WaterLevel()))
		}
	}
}

func (o *Overlay) drawLayer(screen *ebiten.Image, field *core.FloatGrid, pixels []color.NRGBA) {
	total := field.W * field.H
	if o.img == nil || o.img.Bounds().Dx() != field.W || o.img.Bounds().Dy() != field.H {
		o.img = ebiten.NewImage(field.W, field.H)
		o.buf = make([]byte, 4*total)
	}
	if !render.FillRGBA(o.buf, pixels) {
		return
	}
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
