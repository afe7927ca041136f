package tilemap

import "fmt"

// Vertex is a position + texture coordinate pair.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Mesh is an indexed triangle list. A map's mesh is shared by all of its layers
// and is never modified after GeneratePlane returns it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangulate expands the index list into one vertex per triangle corner.
func (m *Mesh) Triangulate() []Vertex {
	if m == nil {
		return nil
	}
	out := make([]Vertex, 0, len(m.Indices))
	for _, i := range m.Indices {
		if int(i) >= len(m.Vertices) {
			out = append(out, Vertex{})
			continue
		}
		out = append(out, m.Vertices[i])
	}
	return out
}

// GeneratePlane builds a single quad covering a mapW x mapH grid of tileW x tileH
// pixel tiles, centered on the origin. Texture coordinates cover [0,1] with v=0 on
// the bottom edge, so v grows opposite to the map's row order.
func GeneratePlane(tileW, tileH, mapW, mapH int) (*Mesh, error) {
	if tileW <= 0 || tileH <= 0 || mapW <= 0 || mapH <= 0 {
		return nil, fmt.Errorf("%w: tile %dx%d, map %dx%d", ErrInvalidDimensions, tileW, tileH, mapW, mapH)
	}
	hw := float32(tileW*mapW) / 2
	hh := float32(tileH*mapH) / 2

	return &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-hw, -hh, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{hw, -hh, 0}, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{-hw, hh, 0}, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{hw, hh, 0}, TexCoord: [2]float32{1, 1}},
		},
		Indices: []uint16{0, 1, 2, 2, 1, 3},
	}, nil
}
