package mesh

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Voxel is one axis-aligned cube placement. Position is the cube center.
type Voxel struct {
	Position mgl32.Vec3
	Color    color.NRGBA
	Size     float32
}

// Column groups the stacked voxels emitted for one grid cell.
type Column struct {
	X, Z   int
	Height int
	Blocks []Voxel
}

// Flatten concatenates the blocks of every column in order.
func Flatten(cols []Column) []Voxel {
	total := 0
	for _, c := range cols {
		total += len(c.Blocks)
	}
	out := make([]Voxel, 0, total)
	for _, c := range cols {
		out = append(out, c.Blocks...)
	}
	return out
}
