package island

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Summary condenses a result into the numbers worth printing.
type Summary struct {
	Seed         int64
	Width        int
	Height       int
	MinHeight    float64
	MaxHeight    float64
	LandFraction float64
	Histogram    [MaterialCount]int
	Output       Output
	Vertices     int
	Triangles    int
	Voxels       int
	Columns      int
	WideIndices  bool
	ExtentMin    mgl32.Vec3
	ExtentMax    mgl32.Vec3
	Elapsed      time.Duration
}

// Summary computes the result's summary statistics.
func (r *Result) Summary() Summary {
	s := Summary{
		Seed:      r.Seed,
		Width:     r.Field.W,
		Height:    r.Field.H,
		Histogram: r.Histogram(),
		Output:    r.Geometry.Output,
		Voxels:    r.Geometry.VoxelCount(),
		Columns:   len(r.Geometry.Columns),
		Elapsed:   r.Elapsed,
	}
	s.MinHeight, s.MaxHeight = r.Field.Range()
	land := 0
	for _, v := range r.Field.Cells() {
		if v > r.Config.WaterLevel {
			land++
		}
	}
	if n := len(r.Field.Cells()); n > 0 {
		s.LandFraction = float64(land) / float64(n)
	}
	if m := r.Geometry.Mesh; m != nil {
		s.Vertices = len(m.Vertices)
		s.Triangles = m.TriangleCount()
		s.WideIndices = m.Wide()
		s.ExtentMin, s.ExtentMax = m.Bounds()
	}
	return s
}
