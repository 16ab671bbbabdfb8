// Package noise implements the gradient noise engine used to synthesize
// terrain, plus interchangeable samplers for layered noise.
package noise

import (
	"errors"
	"fmt"
	"math"

	"islandgen/internal/core"
	rng "islandgen/pkg/core"
)

var (
	// ErrLatticeSize reports a lattice with fewer than two points on an axis.
	ErrLatticeSize = errors.New("noise: lattice must be at least 2x2")
	// ErrLatticeBounds reports a sample that needs a lattice point outside the grid.
	ErrLatticeBounds = errors.New("noise: sample outside lattice")
)

// Lattice is a grid of random unit gradient vectors.
type Lattice struct {
	sizeX, sizeY int
	gx, gy       []float64
}

// NewLattice draws sizeX*sizeY unit vectors from r. Angles are drawn x-major,
// so reseeding r before the call makes the lattice reproducible.
func NewLattice(r *rng.RNG, sizeX, sizeY int) (*Lattice, error) {
	if sizeX < 2 || sizeY < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrLatticeSize, sizeX, sizeY)
	}
	l := &Lattice{
		sizeX: sizeX,
		sizeY: sizeY,
		gx:    make([]float64, sizeX*sizeY),
		gy:    make([]float64, sizeX*sizeY),
	}
	for i := 0; i < sizeX; i++ {
		for j := 0; j < sizeY; j++ {
			theta := r.Angle()
			idx := j*sizeX + i
			l.gx[idx] = math.Cos(theta)
			l.gy[idx] = math.Sin(theta)
		}
	}
	return l, nil
}

// Size returns the lattice dimensions.
func (l *Lattice) Size() (int, int) { return l.sizeX, l.sizeY }

// Gradient returns the unit vector stored at lattice point (x, y).
func (l *Lattice) Gradient(x, y int) (float64, float64) {
	idx := y*l.sizeX + x
	return l.gx[idx], l.gy[idx]
}

// Sample evaluates the noise at lattice-space point (gx, gy). The result lies
// in [-1, 1]. The four corners are blended with linear weights, not a fade
// curve, so the output matches the terrain normalization downstream.
func (l *Lattice) Sample(gx, gy float64) (float64, error) {
	x := int(math.Floor(gx))
	y := int(math.Floor(gy))
	if x < 0 || y < 0 || x+1 >= l.sizeX || y+1 >= l.sizeY {
		return 0, fmt.Errorf("%w: cell (%d,%d) in %dx%d lattice", ErrLatticeBounds, x, y, l.sizeX, l.sizeY)
	}
	w := gx - float64(x)
	v := gy - float64(y)

	ax, ay := l.Gradient(x, y)
	bx, by := l.Gradient(x+1, y)
	cx, cy := l.Gradient(x, y+1)
	dx, dy := l.Gradient(x+1, y+1)

	dotA := ax*w + ay*v
	dotB := bx*(w-1) + by*v
	dotC := cx*w + cy*(v-1)
	dotD := dx*(w-1) + dy*(v-1)

	return lerp(lerp(dotA, dotB, w), lerp(dotC, dotD, w), v), nil
}

// Fill writes noise into every cell of field, mapping the field onto the
// lattice so that column i sits at gx = i*(sizeX-1)/W. Values are rescaled
// from [-1, 1] to [0, amplitude].
func (l *Lattice) Fill(field *core.FloatGrid, amplitude float64) error {
	w, h := field.W, field.H
	cells := field.Cells()
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			gx := float64(i) * float64(l.sizeX-1) / float64(w)
			gy := float64(j) * float64(l.sizeY-1) / float64(h)
			v, err := l.Sample(gx, gy)
			if err != nil {
				return err
			}
			cells[j*w+i] = (v + 1) / 2 * amplitude
		}
	}
	return nil
}

// Generate draws a fresh lattice from r and fills a new w*h field with it.
// Callers seed r immediately before the call.
func Generate(r *rng.RNG, sizeX, sizeY, w, h int, amplitude float64) (*core.FloatGrid, error) {
	l, err := NewLattice(r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}
	field := core.NewFloatGrid(w, h)
	if err := l.Fill(field, amplitude); err != nil {
		return nil, err
	}
	return field, nil
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
