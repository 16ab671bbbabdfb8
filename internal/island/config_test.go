package island

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"islandgen/internal/core"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":         func(c *Config) { c.Width = 0 },
		"tiny lattice":       func(c *Config) { c.GradientLatticeY = 1 },
		"zero voxel":         func(c *Config) { c.VoxelSize = 0 },
		"negative water":     func(c *Config) { c.WaterLevel = -0.1 },
		"water above one":    func(c *Config) { c.WaterLevel = 1.01 },
		"flat island":        func(c *Config) { c.VerticalScale = 0 },
		"negative distort":   func(c *Config) { c.DistortionAmount = -1 },
		"zero scale":         func(c *Config) { c.NoiseScale2 = 0 },
		"unknown noise":      func(c *Config) { c.LayerNoise = "worley" },
		"zero amplitude":     func(c *Config) { c.NoiseAmplitude = 0 },
		"unknown mode":       func(c *Config) { c.Mode = "spiral" },
		"unknown output":     func(c *Config) { c.Output = "points" },
		"coarse mesh":        func(c *Config) { c.Output, c.MeshResolution = OutputMesh, 300 },
		"bad palette colour": func(c *Config) { c.Palette.Snow = RGB(1.5, 1, 1) },
		"nan island height":  func(c *Config) { c.VerticalScale = math.NaN() },
		"inf island height":  func(c *Config) { c.VerticalScale = math.Inf(1) },
		"nan strength":       func(c *Config) { c.NoiseStrength = math.NaN() },
		"nan water":          func(c *Config) { c.WaterLevel = math.NaN() },
		"nan distortion":     func(c *Config) { c.DistortionAmount = math.NaN() },
		"inf weight":         func(c *Config) { c.NoiseWeight1 = math.Inf(-1) },
		"nan scale":          func(c *Config) { c.NoiseScale1 = math.NaN() },
		"nan hillshade":      func(c *Config) { c.HillshadeStrength = math.NaN() },
		"inf mesh height":    func(c *Config) { c.MeshHeightMultiplier = math.Inf(1) },
		"huge layer scale":   func(c *Config) { c.Mode, c.NoiseScale1 = ModeRadial, 10 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfiguration", name, err)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.VoxelSize = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "dimensions") || !strings.Contains(msg, "voxel size") {
		t.Fatalf("error %q does not mention both problems", msg)
	}
}

func TestWaterLevelBoundariesAreValid(t *testing.T) {
	for _, wl := range []float64{0, 1} {
		cfg := DefaultConfig()
		cfg.WaterLevel = wl
		if err := cfg.Validate(); err != nil {
			t.Fatalf("water level %v: %v", wl, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"width":               "128",
		"height":              "-4",
		"gradient_x":          "1",
		"water_level":         "1.5",
		"noise_strength":      "0.5",
		"distance_distortion": "false",
		"mode":                "RADIAL",
		"output":              "Mesh",
		"layer_noise":         "perlin",
		"seed":                "random",
	})
	def := DefaultConfig()
	if cfg.Width != 128 {
		t.Fatalf("width = %d", cfg.Width)
	}
	if cfg.Height != def.Height || cfg.GradientLatticeX != def.GradientLatticeX || cfg.WaterLevel != def.WaterLevel {
		t.Fatal("out of range values should keep defaults")
	}
	if cfg.NoiseStrength != 0.5 || cfg.UseDistanceDistortion {
		t.Fatalf("noise strength %v distortion %v", cfg.NoiseStrength, cfg.UseDistanceDistortion)
	}
	if cfg.Mode != ModeRadial || cfg.Output != OutputMesh || cfg.LayerNoise != "perlin" {
		t.Fatalf("mode %q output %q noise %q", cfg.Mode, cfg.Output, cfg.LayerNoise)
	}
	if cfg.Seed != RandomSeed {
		t.Fatalf("seed = %d", cfg.Seed)
	}
	if got := FromMap(map[string]string{"seed": "812"}).Seed; got != 812 {
		t.Fatalf("seed = %d, want 812", got)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatal("missing file should yield defaults")
	}
}

func TestLoadSettingsOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"width": 200, "mode": "radial", "water_level": 0.3, "palette": {"snow": {"r": 0.9, "g": 0.9, "b": 1}}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.Width != 200 || cfg.Mode != ModeRadial || cfg.WaterLevel != 0.3 {
		t.Fatalf("settings not applied: %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("height = %d, want default", cfg.Height)
	}
	if cfg.Palette.Snow != RGB(0.9, 0.9, 1) || cfg.Palette.Sand != DefaultPalette().Sand {
		t.Fatalf("palette = %+v", cfg.Palette)
	}
}

func TestLoadSettingsRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": `{"widht": 10}`,
		"invalid value": `{"water_level": 3}`,
		"malformed":     `{"width": `,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		cfg, err := LoadSettings(path)
		if err == nil {
			t.Fatalf("%s: expected an error", name)
		}
		if cfg != DefaultConfig() {
			t.Fatalf("%s: expected defaults alongside the error", name)
		}
	}
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"voxel_size": 0}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSettings(path); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestMergeKeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.Width = 77
	base.Palette.Sand = RGB(1, 1, 0)
	got := Merge(base, map[string]string{"height": "33", "width": "oops"})
	if got.Width != 77 || got.Height != 33 || got.Palette.Sand != RGB(1, 1, 0) {
		t.Fatalf("merge = %+v", got)
	}
}

func TestIslandViewReadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"width": 40, "height": 30, "voxel_size": 5}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	view, err := core.Views()["island"](map[string]string{"settings": path, "height": "20"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if view.Size() != (core.Size{W: 40, H: 20}) {
		t.Fatalf("size = %+v, want settings width and flag height", view.Size())
	}
	if _, err := core.Views()["island"](map[string]string{"settings": filepath.Join(t.TempDir(), "none.json")}); err != nil {
		t.Fatalf("missing settings file should fall back to defaults: %v", err)
	}
}

func TestNonFiniteOverridesAreIgnored(t *testing.T) {
	cfg := FromMap(map[string]string{
		"island_height":  "NaN",
		"noise_strength": "Inf",
		"water_level":    "NaN",
		"mode":           "radial",
	})
	def := DefaultConfig()
	if cfg.VerticalScale != def.VerticalScale || cfg.NoiseStrength != def.NoiseStrength || cfg.WaterLevel != def.WaterLevel {
		t.Fatalf("non-finite values leaked into %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNonFiniteSettingsRejectedBeforeRun(t *testing.T) {
	cfg := smallConfig(ModeRadial)
	cfg.NoiseStrength = math.NaN()
	if _, err := Run(cfg, 1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
	cfg = smallConfig(ModeDirect)
	cfg.VerticalScale = math.NaN()
	if _, err := Run(cfg, 1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestLayerScaleBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 100
	cfg.Mode = ModeRadial
	cfg.NoiseScale2 = 5
	if err := cfg.Validate(); err != nil {
		t.Fatalf("scale under the limit rejected: %v", err)
	}
	cfg.NoiseScale2 = 10
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
	// Library backends sample without a lattice and are not bounded.
	cfg.LayerNoise = "simplex"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("simplex layers rejected: %v", err)
	}
	cfg.LayerNoise = "lattice"
	cfg.Mode = ModeDirect
	if err := cfg.Validate(); err != nil {
		t.Fatalf("direct mode does not sample layers: %v", err)
	}
}

func TestScaleControlsStayWithinLayerBound(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	def := DefaultConfig()
	extent := float64(max(def.Width, def.Height))
	for _, c := range g.ParameterControls() {
		if c.Key != "noise_scale_1" && c.Key != "noise_scale_2" {
			continue
		}
		if !c.HasMax || c.Max*extent > maxLayerSpan {
			t.Fatalf("control %q allows scales past the layer bound: %+v", c.Key, c)
		}
	}
}
