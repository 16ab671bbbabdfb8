package server

import (
	"islandgen/internal/core"
	"islandgen/internal/island"
)

// Request is a client message. A present Seed regenerates with that seed
// (-1 draws a new one); Set applies configuration overrides first.
type Request struct {
	Seed *int64            `json:"seed,omitempty"`
	Set  map[string]string `json:"set,omitempty"`
}

// ResultMessage carries one published generation result.
type ResultMessage struct {
	Type       string                 `json:"type"`
	Seed       int64                  `json:"seed"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Texture    []byte                 `json:"texture"`
	Geometry   GeometryData           `json:"geometry"`
	Histogram  map[string]int         `json:"histogram"`
	Parameters core.ParameterSnapshot `json:"parameters"`
	ElapsedMS  float64                `json:"elapsedMs"`
}

// GeometryData is the wire form of island.Geometry.
type GeometryData struct {
	Output    string       `json:"output"`
	Wide      bool         `json:"wide,omitempty"`
	Triangles int          `json:"triangles,omitempty"`
	Vertices  [][3]float32 `json:"vertices,omitempty"`
	UVs       [][2]float32 `json:"uvs,omitempty"`
	Normals   [][3]float32 `json:"normals,omitempty"`
	Indices   []uint32     `json:"indices,omitempty"`
	Voxels    []VoxelData  `json:"voxels,omitempty"`
	VoxelSize float32      `json:"voxelSize,omitempty"`
}

// VoxelData is one placed block.
type VoxelData struct {
	Position [3]float32 `json:"p"`
	Color    string     `json:"c"`
}

// ErrorMessage reports a rejected request to the client that sent it.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func newResultMessage(res *island.Result, params core.ParameterSnapshot) ResultMessage {
	size := res.Size()
	msg := ResultMessage{
		Type:       "result",
		Seed:       res.Seed,
		Width:      size.W,
		Height:     size.H,
		Texture:    res.RGBA(),
		Geometry:   newGeometryData(res.Geometry),
		Histogram:  map[string]int{},
		Parameters: params,
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
	}
	for m, n := range res.Histogram() {
		msg.Histogram[island.Material(m).String()] = n
	}
	return msg
}

func newGeometryData(g island.Geometry) GeometryData {
	data := GeometryData{Output: string(g.Output)}
	if g.Mesh != nil {
		data.Wide = g.Mesh.Wide()
		data.Triangles = g.Mesh.TriangleCount()
		data.Vertices = make([][3]float32, len(g.Mesh.Vertices))
		for i, v := range g.Mesh.Vertices {
			data.Vertices[i] = v
		}
		data.UVs = make([][2]float32, len(g.Mesh.UVs))
		for i, uv := range g.Mesh.UVs {
			data.UVs[i] = uv
		}
		data.Normals = make([][3]float32, len(g.Mesh.Normals))
		for i, n := range g.Mesh.Normals {
			data.Normals[i] = n
		}
		data.Indices = g.Mesh.Indices
	}
	voxels := g.Voxels()
	if len(voxels) > 0 {
		data.VoxelSize = voxels[0].Size
		data.Voxels = make([]VoxelData, len(voxels))
		for i, v := range voxels {
			data.Voxels[i] = VoxelData{
				Position: v.Position,
				Color:    hexColor(v.Color.R, v.Color.G, v.Color.B),
			}
		}
	}
	return data
}

func hexColor(r, g, b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}
