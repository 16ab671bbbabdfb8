package island

import (
	"math"

	"islandgen/internal/core"
	rng "islandgen/pkg/core"
)

// Distort multiplies every sample by a falloff that grows with the distance
// from the field center. Each cell reseeds r with seed + x*height + y and
// draws its own falloff exponent in (2-amount, 2], which roughens the
// otherwise circular coastline while keeping every cell reproducible.
func Distort(field *core.FloatGrid, r *rng.RNG, seed int64, amount float64) {
	w, h := field.W, field.H
	cx := float64(w) / 2
	cy := float64(h) / 2
	maxRadius := math.Sqrt(cx*cx + cy*cy)
	cells := field.Cells()

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			ratio := radialDistance(x, y, w, h) / maxRadius

			r.Seed(seed + int64(x)*int64(h) + int64(y))
			power := 2 - r.Range(0, amount)

			distorted := 0.0
			if ratio > 0 {
				distorted = math.Pow(ratio, power)
			}
			cells[y*w+x] *= 1 - distorted
		}
	}
}

// radialDistance returns the distance from (x, y) to the center of a w*h field.
func radialDistance(x, y, w, h int) float64 {
	return math.Hypot(float64(w)/2-float64(x), float64(h)/2-float64(y))
}
