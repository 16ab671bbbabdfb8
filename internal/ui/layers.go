package ui

import (
	"image/color"
	"math"

	"islandgen/internal/core"
)

// elevationLayer tints the field by height, normalized to its own range.
// Steep cells are drawn more opaque so ridges stand out.
func elevationLayer(field *core.FloatGrid) []color.NRGBA {
	out := make([]color.NRGBA, len(field.Cells()))
	lo, hi := field.Range()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			v := field.At(x, y)
			col := elevationColor((v - lo) / span)

			maxDiff := 0.0
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if field.InBounds(n[0], n[1]) {
					maxDiff = math.Max(maxDiff, math.Abs(v-field.At(n[0], n[1])))
				}
			}
			slope := clamp01(maxDiff / span * float64(max(field.W, field.H)) / 8)
			alpha := float64(col.A) * (0.55 + 0.45*slope)
			col.A = uint8(math.Round(clamp(alpha, 0, 255)))
			out[field.Index(x, y)] = col
		}
	}
	return out
}

// waterLayer marks submerged cells, deeper water more opaque. Dry land is
// left transparent.
func waterLayer(field *core.FloatGrid, waterLevel float64) []color.NRGBA {
	const maxAlpha = 180.0
	tint := color.NRGBA{R: 64, G: 164, B: 223}
	out := make([]color.NRGBA, len(field.Cells()))
	for i, v := range field.Cells() {
		if v >= waterLevel || waterLevel <= 0 {
			continue
		}
		depth := clamp01((waterLevel - v) / waterLevel)
		col := tint
		col.A = uint8(math.Round(maxAlpha * (0.35 + 0.65*math.Sqrt(depth))))
		out[i] = col
	}
	return out
}

func elevationColor(t float64) color.NRGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.NRGBA
	}{
		{0.0, color.NRGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.NRGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.NRGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.NRGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.NRGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpNRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
