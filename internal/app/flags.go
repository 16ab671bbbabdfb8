package app

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"islandgen/internal/core"
)

// maxSeed bounds seeds drawn for the regenerate key.
const maxSeed = 100000

// NewSeed draws a fresh seed for the regenerate key. It is never zero, which
// Reset reads as "use the configured seed".
func NewSeed() int64 { return 1 + rand.Int64N(maxSeed) }

// Config represents the command-line parameters for the viewer.
type Config struct {
	View     string
	Scale    int
	Seed     int64
	Settings string
	HUDWidth int
	Set      Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{View: "island", Scale: 1, Seed: 0, Settings: "settings.json", HUDWidth: 240, Set: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.View, "view", c.View, "view to show ("+strings.Join(ViewNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first generation (0 uses the configured seed)")
	fs.StringVar(&c.Settings, "settings", c.Settings, "JSON settings file")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(c.Set, "set", "override a view parameter as key=value (repeatable)")
}

// Overrides collects repeated key=value flags into the map shape view
// factories accept.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("override %q is not key=value", v)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}

// ViewNames lists registered views in sorted order.
func ViewNames() []string {
	names := make([]string, 0, len(core.Views()))
	for name := range core.Views() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up the configured view and constructs it from the settings
// file and the -set overrides, which take precedence.
func (c *Config) Build() (core.View, error) {
	factory, ok := core.Views()[c.View]
	if !ok {
		return nil, fmt.Errorf("unknown view %q (have %s)", c.View, strings.Join(ViewNames(), ", "))
	}
	values := make(map[string]string, len(c.Set)+1)
	if c.Settings != "" {
		values["settings"] = c.Settings
	}
	for k, v := range c.Set {
		values[k] = v
	}
	return factory(values)
}
