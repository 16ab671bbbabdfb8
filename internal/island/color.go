package island

import (
	"fmt"
	"image/color"
)

// Color is a linear RGB triple with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGB is a shorthand constructor.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Lerp blends a toward b. The factor is clamped to [0, 1]; both endpoints
// are reproduced exactly.
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	u := 1 - t
	return Color{
		R: a.R*u + b.R*t,
		G: a.G*u + b.G*t,
		B: a.B*u + b.B*t,
	}
}

// Add returns c with d added to every channel, each clamped to [0, 1].
func (c Color) Add(d float64) Color {
	return Color{R: clamp01(c.R + d), G: clamp01(c.G + d), B: clamp01(c.B + d)}
}

// NRGBA converts to an opaque 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 255}
}

func (c Color) valid() bool {
	for _, v := range [...]float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette holds the six base colors of the terrain bands.
type Palette struct {
	DeepWater    Color `json:"deep_water"`
	ShallowWater Color `json:"shallow_water"`
	Sand         Color `json:"sand"`
	Grass        Color `json:"grass"`
	Rock         Color `json:"rock"`
	Snow         Color `json:"snow"`
}

// DefaultPalette returns the standard band colors.
func DefaultPalette() Palette {
	return Palette{
		DeepWater:    RGB(0.0, 0.2, 0.5),
		ShallowWater: RGB(0.2, 0.4, 0.7),
		Sand:         RGB(0.9, 0.9, 0.6),
		Grass:        RGB(0.2, 0.6, 0.2),
		Rock:         RGB(0.5, 0.5, 0.5),
		Snow:         RGB(0.95, 0.95, 0.95),
	}
}

// Colors returns the palette ordered from deepest to highest material.
func (p Palette) Colors() [MaterialCount]Color {
	return [MaterialCount]Color{p.DeepWater, p.ShallowWater, p.Sand, p.Grass, p.Rock, p.Snow}
}

func (p Palette) validate() error {
	for m, c := range p.Colors() {
		if !c.valid() {
			return fmt.Errorf("%s color %v has a component outside [0,1]", Material(m), c)
		}
	}
	return nil
}
