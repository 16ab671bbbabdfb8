package island

import "islandgen/internal/core"

// Material names the terrain band a height falls in.
type Material uint8

const (
	DeepWater Material = iota
	ShallowWater
	Sand
	Grass
	Rock
	Snow

	MaterialCount = 6
)

var materialNames = [MaterialCount]string{"deep water", "shallow water", "sand", "grass", "rock", "snow"}

func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return "unknown"
}

// Land band breakpoints, as fractions of the height above the water line.
var landBreaks = [...]float64{0, 0.1, 0.5, 0.8, 1}

// ColorBand is one contiguous height interval and the color at its lower edge.
// Colors blend toward the next band's base across the interval.
type ColorBand struct {
	Material Material
	Lower    float64
	Upper    float64
	Base     Color
}

// Classifier maps normalized heights to colors.
type Classifier struct {
	Palette    Palette
	WaterLevel float64
}

// NewClassifier builds a classifier from the palette and water level of cfg.
func NewClassifier(cfg Config) Classifier {
	return Classifier{Palette: cfg.Palette, WaterLevel: cfg.WaterLevel}
}

// landHeight maps a height at or above the water line into [0, 1].
func (c Classifier) landHeight(h float64) float64 {
	if c.WaterLevel >= 1 {
		return 1
	}
	return (h - c.WaterLevel) / (1 - c.WaterLevel)
}

// Classify returns the color for height h.
func (c Classifier) Classify(h float64) Color {
	p := c.Palette
	if h < c.WaterLevel {
		return Lerp(p.DeepWater, p.ShallowWater, h/c.WaterLevel)
	}

	land := c.landHeight(h)
	colors := [...]Color{p.ShallowWater, p.Sand, p.Grass, p.Rock, p.Snow}
	if land >= 1 {
		return p.Snow
	}
	for i := 1; i < len(landBreaks); i++ {
		if land < landBreaks[i] {
			lo, hi := landBreaks[i-1], landBreaks[i]
			return Lerp(colors[i-1], colors[i], (land-lo)/(hi-lo))
		}
	}
	return p.Snow
}

// Material returns the band h falls in.
func (c Classifier) Material(h float64) Material {
	return materialIn(c.Bands(), h)
}

func materialIn(bands []ColorBand, h float64) Material {
	for _, b := range bands {
		if h < b.Upper {
			return b.Material
		}
	}
	return Snow
}

// Bands lists the six bands in ascending order. They cover [0, 1] without
// gaps; the snow band is the single point 1.
func (c Classifier) Bands() []ColorBand {
	p := c.Palette
	wl := c.WaterLevel
	at := func(t float64) float64 { return wl + t*(1-wl) }
	return []ColorBand{
		{Material: DeepWater, Lower: 0, Upper: wl, Base: p.DeepWater},
		{Material: ShallowWater, Lower: wl, Upper: at(landBreaks[1]), Base: p.ShallowWater},
		{Material: Sand, Lower: at(landBreaks[1]), Upper: at(landBreaks[2]), Base: p.Sand},
		{Material: Grass, Lower: at(landBreaks[2]), Upper: at(landBreaks[3]), Base: p.Grass},
		{Material: Rock, Lower: at(landBreaks[3]), Upper: 1, Base: p.Rock},
		{Material: Snow, Lower: 1, Upper: 1, Base: p.Snow},
	}
}

// Hillshade configures the slope shading applied by Colorize.
type Hillshade struct {
	Enabled  bool
	Strength float64
}

// Colorize classifies every sample of field. With hillshading enabled the
// difference to the left neighbour, scaled by Strength/255, brightens or
// darkens the pixel; the first column of each row has no left neighbour and
// is left unshaded. The field is not modified.
func (c Classifier) Colorize(field *core.FloatGrid, shade Hillshade) []Color {
	w, h := field.W, field.H
	cells := field.Cells()
	out := make([]Color, len(cells))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			v := cells[row+x]
			col := c.Classify(v)
			if shade.Enabled && x > 0 {
				diff := v - cells[row+x-1]
				col = col.Add(diff * shade.Strength / 255)
			}
			out[row+x] = col
		}
	}
	return out
}

// Histogram counts the samples of field per material.
func (c Classifier) Histogram(field *core.FloatGrid) [MaterialCount]int {
	var counts [MaterialCount]int
	bands := c.Bands()
	for _, v := range field.Cells() {
		counts[materialIn(bands, v)]++
	}
	return counts
}
