// Package island synthesizes island height fields and derives their texture
// and geometry.
package island

import (
	"image/color"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"islandgen/internal/core"
	"islandgen/internal/render"
)

// maxRandomSeed bounds seeds drawn for RandomSeed.
const maxRandomSeed = 100000

// Result holds every product of one generation run. It is never modified
// after it is returned.
type Result struct {
	Seed     int64
	Config   Config
	Field    *core.FloatGrid
	Colors   []Color
	Pixels   []color.NRGBA
	Geometry Geometry
	Elapsed  time.Duration
}

// Size reports the field dimensions.
func (r *Result) Size() core.Size { return core.Size{W: r.Field.W, H: r.Field.H} }

// RGBA returns the texture as a premultiplied RGBA byte buffer, ready for
// upload.
func (r *Result) RGBA() []byte {
	buf := make([]byte, 4*len(r.Pixels))
	render.FillRGBA(buf, r.Pixels)
	return buf
}

// Histogram counts field samples per material.
func (r *Result) Histogram() [MaterialCount]int {
	return NewClassifier(r.Config).Histogram(r.Field)
}

// ResolveSeed returns seed, or a freshly drawn seed when seed is RandomSeed.
func ResolveSeed(seed int64) int64 {
	if seed == RandomSeed {
		return rand.Int64N(maxRandomSeed)
	}
	return seed
}

// Run executes the full pipeline for cfg with the given seed: compose the
// field, colorize it, then extract geometry. Configuration errors are
// returned before any field is allocated.
func Run(cfg Config, seed int64) (*Result, error) {
	start := time.Now()
	seed = ResolveSeed(seed)

	extractor, err := ExtractorFor(cfg.Output)
	if err != nil {
		return nil, err
	}
	field, err := Compose(cfg, seed)
	if err != nil {
		return nil, err
	}

	classifier := NewClassifier(cfg)
	colors := classifier.Colorize(field, Hillshade{Enabled: cfg.EnableHillshading, Strength: cfg.HillshadeStrength})
	pixels := make([]color.NRGBA, len(colors))
	for i, c := range colors {
		pixels[i] = c.NRGBA()
	}

	geom, err := extractor.Extract(field, cfg)
	if err != nil {
		return nil, err
	}
	return &Result{
		Seed:     seed,
		Config:   cfg,
		Field:    field,
		Colors:   colors,
		Pixels:   pixels,
		Geometry: geom,
		Elapsed:  time.Since(start),
	}, nil
}

// Generator owns a configuration and the most recent result. Regenerate
// builds a complete result before publishing it, so readers of Current never
// observe a partially built run.
type Generator struct {
	mu      sync.Mutex
	cfg     Config
	current atomic.Pointer[Result]
}

// NewGenerator validates cfg and returns a generator with no result yet.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Name returns the view identifier.
func (g *Generator) Name() string { return "island" }

// Size reports the configured field dimensions.
func (g *Generator) Size() core.Size {
	cfg := g.Config()
	return core.Size{W: cfg.Width, H: cfg.Height}
}

// Config returns the active configuration.
func (g *Generator) Config() Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

// Current returns the latest published result, or nil before the first run.
func (g *Generator) Current() *Result { return g.current.Load() }

// Regenerate reruns the pipeline with seed and atomically replaces the
// current result. On error the previous result stays published.
func (g *Generator) Regenerate(seed int64) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.regenerateLocked(g.cfg, seed)
}

// Reconfigure swaps in cfg and regenerates with the current seed, or with
// cfg.Seed when nothing has been generated yet. An invalid cfg leaves both
// the configuration and the result untouched.
func (g *Generator) Reconfigure(cfg Config) (*Result, error) {
	return g.rebuild(func(c *Config) { *c = cfg }, nil)
}

// Rebuild swaps in cfg and regenerates with seed in one run.
func (g *Generator) Rebuild(cfg Config, seed int64) (*Result, error) {
	return g.rebuild(func(c *Config) { *c = cfg }, &seed)
}

// Update applies mutate to the active configuration and regenerates with the
// current seed. Read, mutate and publish happen under one lock, so
// concurrent updates never drop each other's changes.
func (g *Generator) Update(mutate func(*Config)) (*Result, error) {
	return g.rebuild(mutate, nil)
}

// UpdateWithSeed is Update followed by a run with seed, as a single step.
func (g *Generator) UpdateWithSeed(mutate func(*Config), seed int64) (*Result, error) {
	return g.rebuild(mutate, &seed)
}

func (g *Generator) rebuild(mutate func(*Config), seed *int64) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cfg := g.cfg
	mutate(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	next := cfg.Seed
	if cur := g.current.Load(); cur != nil {
		next = cur.Seed
	}
	if seed != nil {
		next = *seed
	}
	res, err := g.regenerateLocked(cfg, next)
	if err != nil {
		return nil, err
	}
	g.cfg = cfg
	return res, nil
}

func (g *Generator) regenerateLocked(cfg Config, seed int64) (*Result, error) {
	res, err := Run(cfg, seed)
	if err != nil {
		return nil, err
	}
	g.current.Store(res)
	return res, nil
}

// Reset regenerates from seed; zero reuses the configured seed.
func (g *Generator) Reset(seed int64) error {
	if seed == 0 {
		seed = g.Config().Seed
	}
	_, err := g.Regenerate(seed)
	return err
}

// Pixels returns the texture of the current result.
func (g *Generator) Pixels() []color.NRGBA {
	if cur := g.current.Load(); cur != nil {
		return cur.Pixels
	}
	return nil
}

// HeightField returns the field of the current result.
func (g *Generator) HeightField() *core.FloatGrid {
	if cur := g.current.Load(); cur != nil {
		return cur.Field
	}
	return nil
}

// WaterLevel exposes the active water level for overlays.
func (g *Generator) WaterLevel() float64 { return g.Config().WaterLevel }

func init() {
	core.Register("island", func(cfg map[string]string) (core.View, error) {
		base := DefaultConfig()
		if path := cfg["settings"]; path != "" {
			loaded, err := LoadSettings(path)
			if err != nil {
				return nil, err
			}
			base = loaded
		}
		return NewGenerator(Merge(base, cfg))
	})
}
