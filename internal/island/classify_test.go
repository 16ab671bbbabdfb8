package island

import (
	"math"
	"testing"

	"islandgen/internal/core"
)

func colorsClose(a, b Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol && math.Abs(a.B-b.B) <= tol
}

func TestClassifyEndpoints(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	p := c.Palette
	if got := c.Classify(0); got != p.DeepWater {
		t.Fatalf("Classify(0) = %v, want deep water %v", got, p.DeepWater)
	}
	if got := c.Classify(1); got != p.Snow {
		t.Fatalf("Classify(1) = %v, want snow %v", got, p.Snow)
	}
}

func TestClassifyContinuousAtWaterLevel(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	const eps = 1e-9
	below := c.Classify(c.WaterLevel - eps)
	above := c.Classify(c.WaterLevel + eps)
	if !colorsClose(below, above, 1e-6) {
		t.Fatalf("discontinuity at water level: %v vs %v", below, above)
	}
	if !colorsClose(above, c.Palette.ShallowWater, 1e-6) {
		t.Fatalf("water line color = %v, want shallow water", above)
	}
}

func TestClassifyContinuousAtLandBreaks(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	const eps = 1e-9
	for _, b := range c.Bands()[1:5] {
		lo := c.Classify(b.Upper - eps)
		hi := c.Classify(b.Upper + eps)
		if b.Upper >= 1 {
			hi = c.Classify(1)
		}
		if !colorsClose(lo, hi, 1e-6) {
			t.Fatalf("discontinuity at %v (%s): %v vs %v", b.Upper, b.Material, lo, hi)
		}
	}
}

func TestColorizeUniformWaterField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WaterLevel = 0.4
	field := core.NewFloatGrid(6, 5)
	field.Fill(0.2)

	c := NewClassifier(cfg)
	want := Lerp(cfg.Palette.DeepWater, cfg.Palette.ShallowWater, 0.5)
	for _, shade := range []Hillshade{{}, {Enabled: true, Strength: 1000}} {
		colors := c.Colorize(field, shade)
		if len(colors) != 30 {
			t.Fatalf("Colorize returned %d colors, want 30", len(colors))
		}
		for i, got := range colors {
			if got != want {
				t.Fatalf("pixel %d = %v, want %v (hillshade %v)", i, got, want, shade.Enabled)
			}
		}
	}
}

func TestHillshadeSkipsFirstColumn(t *testing.T) {
	cfg := DefaultConfig()
	field := core.NewFloatGrid(3, 2)
	copy(field.Cells(), []float64{
		0.6, 0.61, 0.60,
		0.7, 0.69, 0.70,
	})
	c := NewClassifier(cfg)
	shade := Hillshade{Enabled: true, Strength: 255}
	plain := c.Colorize(field, Hillshade{})
	shaded := c.Colorize(field, shade)

	for y := 0; y < 2; y++ {
		if shaded[y*3] != plain[y*3] {
			t.Fatalf("row %d first column was shaded: %v vs %v", y, shaded[y*3], plain[y*3])
		}
	}

	// Strength 255 makes the shading offset equal to the raw height difference.
	diff := field.At(1, 0) - field.At(0, 0)
	want := c.Classify(field.At(1, 0)).Add(diff)
	if !colorsClose(shaded[1], want, 1e-12) {
		t.Fatalf("shaded pixel = %v, want %v", shaded[1], want)
	}
	if !(shaded[4].R < plain[4].R) {
		t.Fatalf("downhill pixel should darken: %v vs %v", shaded[4], plain[4])
	}
}

func TestColorizeDoesNotMutateField(t *testing.T) {
	field := core.NewFloatGrid(4, 4)
	for i := range field.Cells() {
		field.Cells()[i] = float64(i) / 16
	}
	before := field.Clone()
	NewClassifier(DefaultConfig()).Colorize(field, Hillshade{Enabled: true, Strength: 1000})
	for i, v := range field.Cells() {
		if v != before.Cells()[i] {
			t.Fatalf("Colorize modified sample %d", i)
		}
	}
}

func TestBandsCoverUnitInterval(t *testing.T) {
	for _, wl := range []float64{0, 0.25, 0.4, 1} {
		c := Classifier{Palette: DefaultPalette(), WaterLevel: wl}
		bands := c.Bands()
		if len(bands) != MaterialCount {
			t.Fatalf("got %d bands, want %d", len(bands), MaterialCount)
		}
		if bands[0].Lower != 0 || bands[len(bands)-1].Upper != 1 {
			t.Fatalf("bands do not span [0,1] for water level %v", wl)
		}
		for i := 1; i < len(bands); i++ {
			if bands[i].Lower != bands[i-1].Upper {
				t.Fatalf("gap between %s and %s at water level %v", bands[i-1].Material, bands[i].Material, wl)
			}
			if bands[i].Material != Material(i) {
				t.Fatalf("band %d material = %s", i, bands[i].Material)
			}
		}
	}
}

func TestMaterialLookup(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	cases := map[float64]Material{
		0:    DeepWater,
		0.39: DeepWater,
		0.4:  ShallowWater,
		0.45: ShallowWater,
		0.5:  Sand,
		0.8:  Grass,
		0.95: Rock,
		1:    Snow,
	}
	for h, want := range cases {
		if got := c.Material(h); got != want {
			t.Fatalf("Material(%v) = %s, want %s", h, got, want)
		}
	}
}

func TestHistogramCountsEverySample(t *testing.T) {
	field := core.NewFloatGrid(5, 4)
	for i := range field.Cells() {
		field.Cells()[i] = float64(i) / 19
	}
	counts := NewClassifier(DefaultConfig()).Histogram(field)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 20 {
		t.Fatalf("histogram total = %d, want 20", total)
	}
	if counts[Snow] != 1 {
		t.Fatalf("snow count = %d, want 1", counts[Snow])
	}
}

func TestLerpClampsFactor(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(1, 0.5, 0.25)
	if Lerp(a, b, -1) != a || Lerp(a, b, 2) != b {
		t.Fatal("Lerp must clamp its factor to [0,1]")
	}
	if got := RGB(0.5, 0.5, 0.5).NRGBA(); got.R != 128 || got.A != 255 {
		t.Fatalf("NRGBA() = %v", got)
	}
}
