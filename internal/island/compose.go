package island

import (
	"fmt"

	"islandgen/internal/core"
	"islandgen/internal/noise"
	rng "islandgen/pkg/core"
)

const (
	// offsetRange bounds the random translation applied to each radial layer.
	offsetRange = 1000
	// layerGain lifts the weighted layer sum before clamping.
	layerGain = 100
)

// Composer builds the raw height field for one generation mode. The returned
// field may hold values outside [0, 1]; Compose clamps it.
type Composer interface {
	Mode() Mode
	Compose(r *rng.RNG, cfg Config, seed int64) (*core.FloatGrid, error)
}

// ComposerFor returns the composer implementing mode.
func ComposerFor(mode Mode) (Composer, error) {
	switch mode {
	case ModeRadial:
		return RadialComposer{}, nil
	case ModeDirect:
		return DirectComposer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, mode)
	}
}

// Compose validates cfg and runs the configured composer with a fresh RNG.
// Every sample of the result lies in [0, 1].
func Compose(cfg Config, seed int64) (*core.FloatGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := ComposerFor(cfg.Mode)
	if err != nil {
		return nil, err
	}
	field, err := c.Compose(rng.NewRNG(seed), cfg, seed)
	if err != nil {
		return nil, err
	}
	field.Clamp(0, 1)
	return field, nil
}

// DirectComposer fills the field with one gradient lattice at the configured
// lattice size and amplitude.
type DirectComposer struct{}

// Mode implements Composer.
func (DirectComposer) Mode() Mode { return ModeDirect }

// Compose implements Composer.
func (DirectComposer) Compose(r *rng.RNG, cfg Config, seed int64) (*core.FloatGrid, error) {
	r.Seed(seed)
	field, err := noise.Generate(r, cfg.GradientLatticeX, cfg.GradientLatticeY, cfg.Width, cfg.Height, cfg.NoiseAmplitude)
	if err != nil {
		return nil, fmt.Errorf("direct compose: %w", err)
	}
	return field, nil
}

// RadialComposer blends two translated noise layers and optionally applies
// the distance distortion that shapes the coastline.
type RadialComposer struct{}

// Mode implements Composer.
func (RadialComposer) Mode() Mode { return ModeRadial }

// Compose implements Composer.
func (RadialComposer) Compose(r *rng.RNG, cfg Config, seed int64) (*core.FloatGrid, error) {
	w, h := cfg.Width, cfg.Height

	r.Seed(seed)
	off1X := r.Range(0, offsetRange)
	off1Y := r.Range(0, offsetRange)
	off2X := r.Range(0, offsetRange)
	off2Y := r.Range(0, offsetRange)

	layer1, err := noise.NewSampler(cfg.LayerNoise, r, layerBounds(w, h, off1X, off1Y, cfg.NoiseScale1))
	if err != nil {
		return nil, fmt.Errorf("radial compose: layer 1: %w", err)
	}
	layer2, err := noise.NewSampler(cfg.LayerNoise, r, layerBounds(w, h, off2X, off2Y, cfg.NoiseScale2))
	if err != nil {
		return nil, fmt.Errorf("radial compose: layer 2: %w", err)
	}

	field := core.NewFloatGrid(w, h)
	cells := field.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n1 := layer1.At((float64(x)+off1X)*cfg.NoiseScale1, (float64(y)+off1Y)*cfg.NoiseScale1)
			n2 := layer2.At((float64(x)+off2X)*cfg.NoiseScale2, (float64(y)+off2Y)*cfg.NoiseScale2)
			combined := n1*cfg.NoiseWeight1 + n2*cfg.NoiseWeight2
			cells[y*w+x] = clamp01(combined * cfg.NoiseStrength * layerGain)
		}
	}

	if cfg.UseDistanceDistortion {
		Distort(field, r, seed, cfg.DistortionAmount)
	}
	return field, nil
}

// layerBounds returns the layer-space rectangle sampled for a w*h field.
func layerBounds(w, h int, offX, offY, scale float64) noise.Bounds {
	return noise.Bounds{
		MinX: offX * scale,
		MinY: offY * scale,
		MaxX: (float64(w-1) + offX) * scale,
		MaxY: (float64(h-1) + offY) * scale,
	}
}
