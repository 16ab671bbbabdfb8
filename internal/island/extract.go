package island

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"islandgen/internal/core"
	"islandgen/internal/mesh"
)

// quadHeight is the world-space height of the flat display quad.
const quadHeight = 10

// Geometry is the renderable product of one extraction. Exactly one of Mesh
// and Columns is set, according to Output.
type Geometry struct {
	Output  Output
	Mesh    *mesh.Mesh
	Columns []mesh.Column
}

// Voxels returns every voxel placement in column order.
func (g Geometry) Voxels() []mesh.Voxel { return mesh.Flatten(g.Columns) }

// VoxelCount returns the number of voxel placements without flattening.
func (g Geometry) VoxelCount() int {
	n := 0
	for _, c := range g.Columns {
		n += len(c.Blocks)
	}
	return n
}

// Extractor converts a finished height field into geometry.
type Extractor interface {
	Output() Output
	Extract(field *core.FloatGrid, cfg Config) (Geometry, error)
}

// ExtractorFor returns the extractor producing o.
func ExtractorFor(o Output) (Extractor, error) {
	switch o {
	case OutputMesh:
		return MeshExtractor{}, nil
	case OutputVoxels:
		return VoxelExtractor{}, nil
	case OutputQuad:
		return QuadExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown output %q", ErrInvalidConfiguration, o)
	}
}

// MeshExtractor samples every MeshResolution-th cell into a triangulated
// heightmap. Samples at or below the water level sit on the flat y=0 plane.
type MeshExtractor struct{}

// Output implements Extractor.
func (MeshExtractor) Output() Output { return OutputMesh }

// Extract implements Extractor.
func (MeshExtractor) Extract(field *core.FloatGrid, cfg Config) (Geometry, error) {
	res := cfg.MeshResolution
	if res < 1 {
		return Geometry{}, fmt.Errorf("%w: mesh resolution must be at least 1, got %d", ErrInvalidConfiguration, res)
	}
	mw := field.W / res
	mh := field.H / res
	if mw < 2 || mh < 2 {
		return Geometry{}, fmt.Errorf("%w: mesh of %dx%d vertices is degenerate", ErrInvalidConfiguration, mw, mh)
	}

	m := mesh.New("island", mw*mh, (mw-1)*(mh-1)*6)
	for y := 0; y < mh; y++ {
		for x := 0; x < mw; x++ {
			h := field.At(x*res, y*res)
			yPos := 0.0
			if h > cfg.WaterLevel {
				land := (h - cfg.WaterLevel) / (1 - cfg.WaterLevel)
				yPos = land * cfg.MeshHeightMultiplier
			}
			idx := y*mw + x
			m.Vertices[idx] = mgl32.Vec3{
				float32(float64(x) - float64(mw)/2),
				float32(yPos),
				float32(float64(y) - float64(mh)/2),
			}
			m.UVs[idx] = mgl32.Vec2{
				float32(float64(x) / float64(mw-1)),
				float32(float64(y) / float64(mh-1)),
			}
		}
	}

	for y := 0; y < mh-1; y++ {
		for x := 0; x < mw-1; x++ {
			topLeft := y*mw + x
			topRight := topLeft + 1
			bottomLeft := (y+1)*mw + x
			bottomRight := bottomLeft + 1
			m.AddTriangle(topLeft, bottomLeft, topRight)
			m.AddTriangle(topRight, bottomLeft, bottomRight)
		}
	}
	m.RecalculateNormals()
	return Geometry{Output: OutputMesh, Mesh: m}, nil
}

// VoxelExtractor stacks unit blocks on a VoxelSize grid. Every column reaches
// at least the water floor, floor(WaterLevel*VerticalScale).
type VoxelExtractor struct{}

// Output implements Extractor.
func (VoxelExtractor) Output() Output { return OutputVoxels }

// Extract implements Extractor.
func (VoxelExtractor) Extract(field *core.FloatGrid, cfg Config) (Geometry, error) {
	vs := cfg.VoxelSize
	if vs < 1 {
		return Geometry{}, fmt.Errorf("%w: voxel size must be at least 1, got %d", ErrInvalidConfiguration, vs)
	}
	classifier := NewClassifier(cfg)
	nx := field.W / vs
	ny := field.H / vs
	floor := int(math.Floor(cfg.WaterLevel * cfg.VerticalScale))
	half := vs / 2
	size := float32(vs)

	cols := make([]mesh.Column, 0, nx*ny)
	for cx := 0; cx < nx; cx++ {
		for cy := 0; cy < ny; cy++ {
			avg, err := averageHeight(field, cx*vs, cy*vs, vs)
			if err != nil {
				avg = cfg.WaterLevel
			}
			h := int(math.Floor(avg * cfg.VerticalScale))
			if h < floor {
				h = floor
			}
			col := mesh.Column{X: cx, Z: cy, Height: h, Blocks: make([]mesh.Voxel, 0, h+1)}
			for level := 0; level <= h; level++ {
				col.Blocks = append(col.Blocks, mesh.Voxel{
					Position: mgl32.Vec3{
						float32(cx*vs + half),
						float32(level*vs + half),
						float32(cy*vs + half),
					},
					Color: classifier.Classify(float64(level) / cfg.VerticalScale).NRGBA(),
					Size:  size,
				})
			}
			cols = append(cols, col)
		}
	}
	return Geometry{Output: OutputVoxels, Columns: cols}, nil
}

// averageHeight averages the samples of the size*size window at (startX,
// startY). Samples outside the field are skipped rather than treated as zero.
func averageHeight(field *core.FloatGrid, startX, startY, size int) (float64, error) {
	total := 0.0
	count := 0
	for x := startX; x < startX+size; x++ {
		for y := startY; y < startY+size; y++ {
			if field.InBounds(x, y) {
				total += field.At(x, y)
				count++
			}
		}
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: window at (%d,%d) size %d", ErrEmptyAverageRegion, startX, startY, size)
	}
	return total / float64(count), nil
}

// QuadExtractor produces a flat quad sized to the field's aspect ratio, for
// showing the colored texture in 2D.
type QuadExtractor struct{}

// Output implements Extractor.
func (QuadExtractor) Output() Output { return OutputQuad }

// Extract implements Extractor.
func (QuadExtractor) Extract(field *core.FloatGrid, _ Config) (Geometry, error) {
	aspect := float32(field.W) / float32(field.H)
	return Geometry{Output: OutputQuad, Mesh: mesh.Quad("island quad", quadHeight*aspect, quadHeight)}, nil
}
