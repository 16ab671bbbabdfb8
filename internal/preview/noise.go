// Package preview renders the raw gradient noise engine output as a grayscale
// image, for inspecting the lattice on its own.
package preview

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"islandgen/internal/core"
	"islandgen/internal/noise"
	rng "islandgen/pkg/core"
)

// Config holds the noise preview parameters.
type Config struct {
	Width     int
	Height    int
	GridX     int
	GridY     int
	Amplitude float64
	Kind      noise.Kind
	Seed      int64
}

// DefaultConfig returns the standard preview parameters.
func DefaultConfig() Config {
	return Config{
		Width:     512,
		Height:    512,
		GridX:     50,
		GridY:     50,
		Amplitude: 1,
		Kind:      noise.KindLattice,
		Seed:      12345,
	}
}

// FromMap overlays flag-style values onto the defaults. Malformed values are
// ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	atLeast := func(key string, dst *int, min int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
				*dst = parsed
			}
		}
	}
	atLeast("width", &c.Width, 1)
	atLeast("height", &c.Height, 1)
	atLeast("gradient_x", &c.GridX, 2)
	atLeast("gradient_y", &c.GridY, 2)
	if v, ok := cfg["noise_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Amplitude = parsed
		}
	}
	if v, ok := cfg["layer_noise"]; ok {
		if k := noise.Kind(strings.ToLower(v)); k.Valid() {
			c.Kind = k
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// View draws a single noise field normalized to the full gray range.
type View struct {
	mu     sync.Mutex
	cfg    Config
	seed   int64
	field  *core.FloatGrid
	pixels []color.NRGBA
}

// New returns a preview view. Nothing is generated until Reset.
func New(cfg Config) (*View, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("preview: dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Kind.Valid() {
		return nil, fmt.Errorf("preview: unknown noise %q", cfg.Kind)
	}
	return &View{cfg: cfg, seed: cfg.Seed}, nil
}

// Name returns the view identifier.
func (v *View) Name() string { return "noise" }

// Size reports the image dimensions.
func (v *View) Size() core.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return core.Size{W: v.cfg.Width, H: v.cfg.Height}
}

// Reset regenerates the field; zero reuses the configured seed.
func (v *View) Reset(seed int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seed == 0 {
		seed = v.cfg.Seed
	}
	return v.generateLocked(seed)
}

func (v *View) generateLocked(seed int64) error {
	field, err := Sample(v.cfg, seed)
	if err != nil {
		return err
	}
	v.seed = seed
	v.field = field
	v.pixels = Grayscale(field)
	return nil
}

// Pixels returns the last rendered image.
func (v *View) Pixels() []color.NRGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pixels
}

// HeightField exposes the raw samples to overlays.
func (v *View) HeightField() *core.FloatGrid {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.field
}

// Sample fills a Width x Height field from the configured noise source. The
// lattice kind is the engine output itself; the other kinds are sampled over
// the same coordinate range for comparison.
func Sample(cfg Config, seed int64) (*core.FloatGrid, error) {
	r := rng.NewRNG(seed)
	if cfg.Kind == noise.KindLattice {
		return noise.Generate(r, cfg.GridX, cfg.GridY, cfg.Width, cfg.Height, cfg.Amplitude)
	}
	spanX := float64(cfg.GridX - 1)
	spanY := float64(cfg.GridY - 1)
	sampler, err := noise.NewSampler(cfg.Kind, r, noise.Bounds{MaxX: spanX, MaxY: spanY})
	if err != nil {
		return nil, err
	}
	field := core.NewFloatGrid(cfg.Width, cfg.Height)
	for y := 0; y < field.H; y++ {
		gy := float64(y) * spanY / float64(field.H)
		for x := 0; x < field.W; x++ {
			gx := float64(x) * spanX / float64(field.W)
			field.Set(x, y, sampler.At(gx, gy)*cfg.Amplitude)
		}
	}
	return field, nil
}

// Grayscale maps the field's own min..max onto black..white. A constant field
// renders black.
func Grayscale(field *core.FloatGrid) []color.NRGBA {
	lo, hi := field.Range()
	span := hi - lo
	out := make([]color.NRGBA, len(field.Cells()))
	for i, v := range field.Cells() {
		var g uint8
		if span > 0 {
			g = uint8((v-lo)/span*255 + 0.5)
		}
		out[i] = color.NRGBA{R: g, G: g, B: g, A: 0xff}
	}
	return out
}

// Parameters reports the preview settings for the HUD.
func (v *View) Parameters() core.ParameterSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Noise",
		Params: []core.Parameter{
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(v.seed, 10)},
			{Key: "gradient_x", Label: "Gradient width", Type: core.ParamTypeInt, Value: strconv.Itoa(v.cfg.GridX)},
			{Key: "gradient_y", Label: "Gradient height", Type: core.ParamTypeInt, Value: strconv.Itoa(v.cfg.GridY)},
			{Key: "noise_amplitude", Label: "Amplitude", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.cfg.Amplitude, 'f', -1, 64)},
			{Key: "layer_noise", Label: "Noise", Type: core.ParamTypeChoice, Value: string(v.cfg.Kind)},
		},
	}}}
}

// ParameterControls lists the lattice size as HUD-adjustable.
func (v *View) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gradient_x", Label: "Grid W", Type: core.ParamTypeInt, Step: 1, Min: 2, HasMin: true, Max: 256, HasMax: true},
		{Key: "gradient_y", Label: "Grid H", Type: core.ParamTypeInt, Step: 1, Min: 2, HasMin: true, Max: 256, HasMax: true},
	}
}

// SetIntParameter resizes the lattice and redraws with the current seed.
func (v *View) SetIntParameter(key string, value int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if value < 2 {
		return false
	}
	prev := v.cfg
	switch key {
	case "gradient_x":
		v.cfg.GridX = value
	case "gradient_y":
		v.cfg.GridY = value
	default:
		return false
	}
	if err := v.generateLocked(v.seed); err != nil {
		v.cfg = prev
		return false
	}
	return true
}

func init() {
	core.Register("noise", func(cfg map[string]string) (core.View, error) {
		return New(FromMap(cfg))
	})
}
