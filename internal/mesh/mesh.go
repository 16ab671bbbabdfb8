// Package mesh holds the renderable geometry produced from a height field.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// WideIndexThreshold is the largest vertex count addressable with 16-bit
// indices on the renderers we target.
const WideIndexThreshold = 65000

// ErrIndexOverflow reports an attempt to narrow a wide mesh to 16-bit indices.
var ErrIndexOverflow = errors.New("mesh: vertex count exceeds 16-bit index range")

// IndexFormat names the index width a renderer must use for a mesh.
type IndexFormat uint8

const (
	Index16 IndexFormat = iota
	Index32
)

func (f IndexFormat) String() string {
	if f == Index32 {
		return "uint32"
	}
	return "uint16"
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	UVs      []mgl32.Vec2
	Normals  []mgl32.Vec3
	Indices  []uint32
}

// New allocates a mesh with room for the given vertex and index counts.
func New(name string, vertices, indices int) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]mgl32.Vec3, vertices),
		UVs:      make([]mgl32.Vec2, vertices),
		Indices:  make([]uint32, 0, indices),
	}
}

// Wide reports whether the mesh needs 32-bit indices.
func (m *Mesh) Wide() bool { return len(m.Vertices) > WideIndexThreshold }

// IndexFormat returns the index width required by the mesh.
func (m *Mesh) IndexFormat() IndexFormat {
	if m.Wide() {
		return Index32
	}
	return Index16
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// AddTriangle appends one triangle.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Indices = append(m.Indices, uint32(a), uint32(b), uint32(c))
}

// Indices16 returns the index list narrowed to uint16.
func (m *Mesh) Indices16() ([]uint16, error) {
	if m.Wide() {
		return nil, fmt.Errorf("%w: %d vertices", ErrIndexOverflow, len(m.Vertices))
	}
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out, nil
}

// RecalculateNormals rebuilds per-vertex normals from the triangle list.
// Face normals are accumulated unnormalized so larger faces weigh more.
func (m *Mesh) RecalculateNormals() {
	normals := make([]mgl32.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		pa, pb, pc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
		face := pb.Sub(pa).Cross(pc.Sub(pa))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	m.Normals = normals
}

// Bounds returns the axis-aligned box enclosing every vertex.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}

// Quad returns a flat textured quad of the given height, centered on the
// origin in the XY plane and facing -Z.
func Quad(name string, width, height float32) *Mesh {
	m := New(name, 4, 6)
	m.Vertices[0] = mgl32.Vec3{-width / 2, -height / 2, 0}
	m.Vertices[1] = mgl32.Vec3{width / 2, -height / 2, 0}
	m.Vertices[2] = mgl32.Vec3{-width / 2, height / 2, 0}
	m.Vertices[3] = mgl32.Vec3{width / 2, height / 2, 0}
	m.UVs[0] = mgl32.Vec2{0, 0}
	m.UVs[1] = mgl32.Vec2{1, 0}
	m.UVs[2] = mgl32.Vec2{0, 1}
	m.UVs[3] = mgl32.Vec2{1, 1}
	m.AddTriangle(0, 2, 1)
	m.AddTriangle(2, 3, 1)
	m.RecalculateNormals()
	return m
}
