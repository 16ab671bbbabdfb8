package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	rng "islandgen/pkg/core"
)

// Kind selects the backend used for a noise layer.
type Kind string

const (
	KindLattice Kind = "lattice"
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Kinds lists the supported backends in display order.
var Kinds = []Kind{KindLattice, KindPerlin, KindSimplex}

// Valid reports whether k names a known backend.
func (k Kind) Valid() bool {
	switch k {
	case KindLattice, KindPerlin, KindSimplex:
		return true
	}
	return false
}

// Sampler evaluates continuous noise in [0, 1] at layer-space coordinates.
type Sampler interface {
	At(x, y float64) float64
}

// Bounds is the layer-space rectangle a sampler will be queried over.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewSampler builds a sampler of the given kind. Every backend draws its
// randomness from r, so the result is reproducible for a seeded r.
func NewSampler(kind Kind, r *rng.RNG, b Bounds) (Sampler, error) {
	switch kind {
	case KindLattice, "":
		s, err := NewLatticeSampler(r, b)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindPerlin:
		return NewPerlinSampler(r.Source().Int64()), nil
	case KindSimplex:
		return NewSimplexSampler(r.Source().Int64()), nil
	default:
		return nil, fmt.Errorf("noise: unknown sampler kind %q", kind)
	}
}

// LatticeSampler covers a bounded window with a gradient lattice whose cells
// are one unit wide in layer space.
type LatticeSampler struct {
	lattice      *Lattice
	originX      float64
	originY      float64
	maxGX, maxGY float64
}

// NewLatticeSampler allocates the smallest lattice that covers b.
func NewLatticeSampler(r *rng.RNG, b Bounds) (*LatticeSampler, error) {
	ox := math.Floor(b.MinX)
	oy := math.Floor(b.MinY)
	sizeX := int(math.Ceil(b.MaxX)-ox) + 2
	sizeY := int(math.Ceil(b.MaxY)-oy) + 2
	l, err := NewLattice(r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}
	return &LatticeSampler{
		lattice: l,
		originX: ox,
		originY: oy,
		maxGX:   math.Nextafter(float64(sizeX-1), 0),
		maxGY:   math.Nextafter(float64(sizeY-1), 0),
	}, nil
}

// At samples the lattice. Points outside the covered window are clamped to
// its edge.
func (s *LatticeSampler) At(x, y float64) float64 {
	gx := clamp(x-s.originX, 0, s.maxGX)
	gy := clamp(y-s.originY, 0, s.maxGY)
	v, err := s.lattice.Sample(gx, gy)
	if err != nil {
		return 0.5
	}
	return (v + 1) / 2
}

// Lattice exposes the underlying gradient grid.
func (s *LatticeSampler) Lattice() *Lattice { return s.lattice }

// PerlinSampler wraps classic Perlin noise.
type PerlinSampler struct {
	p *perlin.Perlin
}

// NewPerlinSampler returns a three-octave Perlin sampler.
func NewPerlinSampler(seed int64) *PerlinSampler {
	return &PerlinSampler{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// At implements Sampler.
func (s *PerlinSampler) At(x, y float64) float64 {
	return clamp((s.p.Noise2D(x, y)+1)/2, 0, 1)
}

// SimplexSampler wraps normalized OpenSimplex noise.
type SimplexSampler struct {
	n opensimplex.Noise
}

// NewSimplexSampler returns an OpenSimplex sampler.
func NewSimplexSampler(seed int64) *SimplexSampler {
	return &SimplexSampler{n: opensimplex.NewNormalized(seed)}
}

// At implements Sampler.
func (s *SimplexSampler) At(x, y float64) float64 {
	return clamp(s.n.Eval2(x, y), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
