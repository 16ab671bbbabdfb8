package island

import (
	"math"
	"slices"
	"testing"

	"islandgen/internal/core"
	"islandgen/internal/noise"
	rng "islandgen/pkg/core"
)

func smallConfig(mode Mode) Config {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.GradientLatticeX = 5
	cfg.GradientLatticeY = 4
	cfg.VoxelSize = 8
	cfg.Mode = mode
	cfg.Seed = 1234
	return cfg
}

func assertUnitRange(t *testing.T, field *core.FloatGrid) {
	t.Helper()
	for i, v := range field.Cells() {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("sample %d = %v, outside [0,1]", i, v)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeRadial, ModeDirect} {
		cfg := smallConfig(mode)
		a, err := Compose(cfg, 77)
		if err != nil {
			t.Fatalf("%s: Compose: %v", mode, err)
		}
		b, err := Compose(cfg, 77)
		if err != nil {
			t.Fatalf("%s: Compose: %v", mode, err)
		}
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("%s: equal seeds produced different fields", mode)
		}
		c, err := Compose(cfg, 78)
		if err != nil {
			t.Fatalf("%s: Compose: %v", mode, err)
		}
		if slices.Equal(a.Cells(), c.Cells()) {
			t.Fatalf("%s: different seeds produced the same field", mode)
		}
	}
}

func TestComposeStaysInUnitRange(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Mode = ModeDirect },
		func(c *Config) { c.Mode = ModeDirect; c.NoiseAmplitude = 4 },
		func(c *Config) { c.Mode = ModeRadial },
		func(c *Config) { c.Mode = ModeRadial; c.UseDistanceDistortion = false },
		func(c *Config) { c.Mode = ModeRadial; c.DistortionAmount = 3 },
		func(c *Config) { c.Mode = ModeRadial; c.NoiseStrength = 0.001; c.LayerNoise = noise.KindPerlin },
		func(c *Config) { c.Mode = ModeRadial; c.NoiseStrength = 0.01; c.LayerNoise = noise.KindSimplex },
	}
	for i, mutate := range cases {
		cfg := smallConfig(ModeDirect)
		mutate(&cfg)
		field, err := Compose(cfg, int64(i))
		if err != nil {
			t.Fatalf("case %d: Compose: %v", i, err)
		}
		assertUnitRange(t, field)
	}
}

func TestDirectComposeMatchesNoiseEngine(t *testing.T) {
	cfg := smallConfig(ModeDirect)
	field, err := Compose(cfg, 5)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	want, err := noise.Generate(rng.NewRNG(5), cfg.GradientLatticeX, cfg.GradientLatticeY, cfg.Width, cfg.Height, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(field.Cells(), want.Cells()) {
		t.Fatal("direct mode should equal the raw engine output at amplitude 1")
	}
}

func TestDistortionDependsOnMode(t *testing.T) {
	cfg := smallConfig(ModeRadial)
	cfg.NoiseStrength = 0.005
	with, err := Compose(cfg, 9)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	cfg.UseDistanceDistortion = false
	without, err := Compose(cfg, 9)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if slices.Equal(with.Cells(), without.Cells()) {
		t.Fatal("distance distortion had no effect in radial mode")
	}
	if with.At(0, 0) != 0 {
		t.Fatalf("corner sample = %v, want 0 after distortion", with.At(0, 0))
	}

	direct := smallConfig(ModeDirect)
	a, _ := Compose(direct, 9)
	direct.UseDistanceDistortion = false
	b, _ := Compose(direct, 9)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("distance distortion must not apply in direct mode")
	}
}

func TestDistortWithoutRandomExponent(t *testing.T) {
	field := core.NewFloatGrid(4, 4)
	field.Fill(1)
	Distort(field, rng.NewRNG(0), 42, 0)

	if got := field.At(2, 2); got != 1 {
		t.Fatalf("center = %v, want 1", got)
	}
	if got := field.At(0, 0); math.Abs(got) > 1e-12 {
		t.Fatalf("far corner = %v, want 0", got)
	}
	// (1,2) is 1 unit from the center of a field with max radius sqrt(8).
	if got, want := field.At(1, 2), 1-1.0/8; math.Abs(got-want) > 1e-12 {
		t.Fatalf("(1,2) = %v, want %v", got, want)
	}
}

func TestDistortReseedsPerCell(t *testing.T) {
	a := core.NewFloatGrid(8, 8)
	a.Fill(1)
	b := a.Clone()

	// A different starting state of the generator must not matter.
	r := rng.NewRNG(1)
	r.Float64()
	Distort(a, rng.NewRNG(99), 7, 1)
	Distort(b, r, 7, 1)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Distort depends on prior generator state")
	}
}

func TestComposeRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(ModeDirect)
	cfg.GradientLatticeX = 1
	if _, err := Compose(cfg, 1); err == nil {
		t.Fatal("expected a configuration error")
	}
}
