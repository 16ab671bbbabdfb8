package core

import "image/color"

// Size describes the dimensions of a generated image.
type Size struct {
	W int
	H int
}

// View defines the minimal contract a generated, displayable product must
// implement. Reset regenerates the whole product from a seed.
type View interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Pixels() []color.NRGBA
}

// Factory constructs a View using an optional configuration map.
type Factory func(cfg map[string]string) (View, error)

var views = map[string]Factory{}

// Register adds a view factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	views[name] = f
}

// Views exposes the registry of available view factories.
func Views() map[string]Factory {
	return views
}
