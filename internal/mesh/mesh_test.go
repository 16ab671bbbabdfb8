package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func grid(w, h int) *Mesh {
	m := New("grid", w*h, (w-1)*(h-1)*6)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Vertices[y*w+x] = mgl32.Vec3{float32(x), 0, float32(y)}
		}
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			tl := y*w + x
			bl := (y+1)*w + x
			m.AddTriangle(tl, bl, tl+1)
			m.AddTriangle(tl+1, bl, bl+1)
		}
	}
	return m
}

func TestRecalculateNormalsFlatGridFacesUp(t *testing.T) {
	m := grid(4, 3)
	m.RecalculateNormals()
	if len(m.Normals) != len(m.Vertices) {
		t.Fatalf("normals = %d, want %d", len(m.Normals), len(m.Vertices))
	}
	for i, n := range m.Normals {
		if !n.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
			t.Fatalf("normal %d = %v, want +Y", i, n)
		}
	}
}

func TestWideFlagAndNarrowing(t *testing.T) {
	small := grid(2, 2)
	if small.Wide() || small.IndexFormat() != Index16 {
		t.Fatal("4-vertex mesh reported as wide")
	}
	idx, err := small.Indices16()
	if err != nil {
		t.Fatalf("Indices16: %v", err)
	}
	if len(idx) != 6 || idx[5] != 3 {
		t.Fatalf("Indices16 = %v", idx)
	}

	wide := New("wide", WideIndexThreshold+1, 0)
	if !wide.Wide() || wide.IndexFormat() != Index32 {
		t.Fatal("mesh above threshold not reported as wide")
	}
	if _, err := wide.Indices16(); !errors.Is(err, ErrIndexOverflow) {
		t.Fatalf("Indices16 err = %v, want ErrIndexOverflow", err)
	}

	edge := New("edge", WideIndexThreshold, 0)
	if edge.Wide() {
		t.Fatal("mesh at the threshold must still use 16-bit indices")
	}
}

func TestQuad(t *testing.T) {
	q := Quad("quad", 20, 10)
	if len(q.Vertices) != 4 || q.TriangleCount() != 2 {
		t.Fatalf("quad has %d vertices, %d triangles", len(q.Vertices), q.TriangleCount())
	}
	min, max := q.Bounds()
	if min != (mgl32.Vec3{-10, -5, 0}) || max != (mgl32.Vec3{10, 5, 0}) {
		t.Fatalf("quad bounds = %v..%v", min, max)
	}
	for i, n := range q.Normals {
		if math.Abs(float64(n.Z())+1) > 1e-6 {
			t.Fatalf("quad normal %d = %v, want -Z", i, n)
		}
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	cols := []Column{
		{Blocks: []Voxel{{Size: 1}, {Size: 2}}},
		{Blocks: []Voxel{{Size: 3}}},
	}
	flat := Flatten(cols)
	if len(flat) != 3 || flat[0].Size != 1 || flat[2].Size != 3 {
		t.Fatalf("Flatten = %v", flat)
	}
}
