// Package terrain builds marching-squares land meshes and clips them to
// circular patches.
package terrain

import (
	"errors"
	"fmt"
)

// Mesh errors.
var (
	ErrInvalidRadius = errors.New("invalid clip radius")
	ErrCorruptMesh   = errors.New("corrupt mesh")
)

// Mesh holds flat, parallel vertex attribute buffers and a triangle index
// buffer, ready for GPU upload. Triangles wind counter-clockwise seen from +Z.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Colors    [][4]float32
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

// Validate checks that every attribute buffer has one entry per vertex and
// every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.UVs) != n || len(m.Colors) != n {
		return fmt.Errorf("%w: attribute lengths differ (positions %d, normals %d, uvs %d, colors %d)",
			ErrCorruptMesh, n, len(m.Normals), len(m.UVs), len(m.Colors))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrCorruptMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrCorruptMesh, idx, i, n)
		}
	}
	return nil
}

func (m *Mesh) addVertex(pos [3]float32, normal [3]float32, uv [2]float32, color [4]float32) uint32 {
	idx := uint32(len(m.Positions))
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	m.Colors = append(m.Colors, color)
	return idx
}

// computeBounds returns the bounding box of positions.
// An empty slice yields zero bounds.
func computeBounds(positions [][3]float32) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}

	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, p := range positions {
		updateBounds(&b, p)
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
