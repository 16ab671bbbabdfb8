package island

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"islandgen/internal/noise"
)

// maxLayerSpan bounds the lattice cells a radial layer may cover along one
// axis, noise scale times the larger field dimension.
const maxLayerSpan = 1024

// RandomSeed asks the generator to draw a fresh seed for the run.
const RandomSeed int64 = -1

// Mode selects how the base height field is composed.
type Mode string

const (
	// ModeRadial layers two offset noise samplers and, optionally, a
	// distance distortion that pulls the edges under water.
	ModeRadial Mode = "radial"
	// ModeDirect fills the field with a single gradient lattice.
	ModeDirect Mode = "direct"
)

// Output selects the geometry extracted from the height field.
type Output string

const (
	OutputMesh   Output = "mesh"
	OutputVoxels Output = "voxels"
	OutputQuad   Output = "quad"
)

// Config is an immutable snapshot of every tunable used by one generation run.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	GradientLatticeX int `json:"gradient_x"`
	GradientLatticeY int `json:"gradient_y"`

	NoiseScale1    float64    `json:"noise_scale_1"`
	NoiseScale2    float64    `json:"noise_scale_2"`
	NoiseWeight1   float64    `json:"noise_weight_1"`
	NoiseWeight2   float64    `json:"noise_weight_2"`
	NoiseStrength  float64    `json:"noise_strength"`
	NoiseAmplitude float64    `json:"noise_amplitude"`
	LayerNoise     noise.Kind `json:"layer_noise"`

	VerticalScale float64 `json:"island_height"`
	VoxelSize     int     `json:"voxel_size"`

	WaterLevel            float64 `json:"water_level"`
	UseDistanceDistortion bool    `json:"distance_distortion"`
	DistortionAmount      float64 `json:"distortion_amount"`

	EnableHillshading bool    `json:"hillshading"`
	HillshadeStrength float64 `json:"hillshade_strength"`

	MeshHeightMultiplier float64 `json:"mesh_height"`
	MeshResolution       int     `json:"mesh_resolution"`

	Mode   Mode   `json:"mode"`
	Output Output `json:"output"`

	Palette Palette `json:"palette"`

	Seed int64 `json:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:                 500,
		Height:                500,
		GradientLatticeX:      4,
		GradientLatticeY:      4,
		NoiseScale1:           0.05,
		NoiseScale2:           0.08,
		NoiseWeight1:          0.7,
		NoiseWeight2:          0.3,
		NoiseStrength:         0.25,
		NoiseAmplitude:        1,
		LayerNoise:            noise.KindLattice,
		VerticalScale:         15,
		VoxelSize:             25,
		WaterLevel:            0.4,
		UseDistanceDistortion: true,
		DistortionAmount:      1,
		EnableHillshading:     true,
		HillshadeStrength:     1000,
		MeshHeightMultiplier:  10,
		MeshResolution:        4,
		Mode:                  ModeDirect,
		Output:                OutputVoxels,
		Palette:               DefaultPalette(),
		Seed:                  RandomSeed,
	}
}

// Validate reports every problem with the configuration. All errors wrap
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...))
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"noise_scale_1", c.NoiseScale1},
		{"noise_scale_2", c.NoiseScale2},
		{"noise_weight_1", c.NoiseWeight1},
		{"noise_weight_2", c.NoiseWeight2},
		{"noise_strength", c.NoiseStrength},
		{"noise_amplitude", c.NoiseAmplitude},
		{"island_height", c.VerticalScale},
		{"water_level", c.WaterLevel},
		{"distortion_amount", c.DistortionAmount},
		{"hillshade_strength", c.HillshadeStrength},
		{"mesh_height", c.MeshHeightMultiplier},
	} {
		if !finite(f.value) {
			bad("%s must be finite, got %v", f.name, f.value)
		}
	}

	if c.Width < 1 || c.Height < 1 {
		bad("dimensions must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.GradientLatticeX < 2 || c.GradientLatticeY < 2 {
		bad("gradient lattice must be at least 2x2, got %dx%d", c.GradientLatticeX, c.GradientLatticeY)
	}
	if c.VoxelSize < 1 {
		bad("voxel size must be at least 1, got %d", c.VoxelSize)
	}
	if c.WaterLevel < 0 || c.WaterLevel > 1 {
		bad("water level must lie in [0,1], got %v", c.WaterLevel)
	}
	if c.VerticalScale <= 0 {
		bad("vertical scale must be positive, got %v", c.VerticalScale)
	}
	if c.DistortionAmount < 0 {
		bad("distortion amount must not be negative, got %v", c.DistortionAmount)
	}

	if c.NoiseScale1 <= 0 || c.NoiseScale2 <= 0 {
		bad("noise scales must be positive, got %v and %v", c.NoiseScale1, c.NoiseScale2)
	}
	if !c.LayerNoise.Valid() {
		bad("unknown layer noise %q", c.LayerNoise)
	}
	if c.Mode == ModeRadial && c.LayerNoise == noise.KindLattice {
		extent := float64(max(c.Width, c.Height))
		if span := math.Max(c.NoiseScale1, c.NoiseScale2) * extent; span > maxLayerSpan {
			bad("noise scale covers %.0f lattice cells across a %dx%d field, limit %d", span, c.Width, c.Height, maxLayerSpan)
		}
	}
	if c.NoiseAmplitude <= 0 {
		bad("noise amplitude must be positive, got %v", c.NoiseAmplitude)
	}

	switch c.Mode {
	case ModeRadial, ModeDirect:
	default:
		bad("unknown mode %q", c.Mode)
	}

	switch c.Output {
	case OutputMesh:
		if c.MeshResolution < 1 {
			bad("mesh resolution must be at least 1, got %d", c.MeshResolution)
		} else if c.Width/c.MeshResolution < 2 || c.Height/c.MeshResolution < 2 {
			bad("mesh resolution %d leaves fewer than 2x2 vertices for a %dx%d field", c.MeshResolution, c.Width, c.Height)
		}
	case OutputVoxels, OutputQuad:
	default:
		bad("unknown output %q", c.Output)
	}

	if err := c.Palette.validate(); err != nil {
		bad("%v", err)
	}
	return errors.Join(errs...)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	return Merge(DefaultConfig(), cfg)
}

// Merge overlays flag-style key/value pairs onto base. Malformed or
// out-of-range values keep the base value.
func Merge(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	positiveInt(cfg, "width", &c.Width, 1)
	positiveInt(cfg, "height", &c.Height, 1)
	positiveInt(cfg, "gradient_x", &c.GradientLatticeX, 2)
	positiveInt(cfg, "gradient_y", &c.GradientLatticeY, 2)
	positiveInt(cfg, "voxel_size", &c.VoxelSize, 1)
	positiveInt(cfg, "mesh_resolution", &c.MeshResolution, 1)

	floatValue(cfg, "noise_scale_1", &c.NoiseScale1)
	floatValue(cfg, "noise_scale_2", &c.NoiseScale2)
	floatValue(cfg, "noise_weight_1", &c.NoiseWeight1)
	floatValue(cfg, "noise_weight_2", &c.NoiseWeight2)
	floatValue(cfg, "noise_strength", &c.NoiseStrength)
	floatValue(cfg, "noise_amplitude", &c.NoiseAmplitude)
	floatValue(cfg, "island_height", &c.VerticalScale)
	floatValue(cfg, "distortion_amount", &c.DistortionAmount)
	floatValue(cfg, "hillshade_strength", &c.HillshadeStrength)
	floatValue(cfg, "mesh_height", &c.MeshHeightMultiplier)
	if v, ok := cfg["water_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.WaterLevel = parsed
		}
	}

	boolValue(cfg, "distance_distortion", &c.UseDistanceDistortion)
	boolValue(cfg, "hillshading", &c.EnableHillshading)

	if v, ok := cfg["mode"]; ok {
		switch m := Mode(strings.ToLower(v)); m {
		case ModeRadial, ModeDirect:
			c.Mode = m
		}
	}
	if v, ok := cfg["output"]; ok {
		switch o := Output(strings.ToLower(v)); o {
		case OutputMesh, OutputVoxels, OutputQuad:
			c.Output = o
		}
	}
	if v, ok := cfg["layer_noise"]; ok {
		if k := noise.Kind(strings.ToLower(v)); k.Valid() {
			c.LayerNoise = k
		}
	}
	if v, ok := cfg["seed"]; ok {
		if strings.EqualFold(v, "random") {
			c.Seed = RandomSeed
		} else if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func positiveInt(cfg map[string]string, key string, dst *int, min int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

func floatValue(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && finite(parsed) {
		*dst = parsed
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func boolValue(cfg map[string]string, key string, dst *bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseBool(v); err == nil {
		*dst = parsed
	}
}
