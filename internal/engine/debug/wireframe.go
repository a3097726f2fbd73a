// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/marching-terrain/internal/engine/terrain"
	"github.com/Faultbox/marching-terrain/pkg/math"
)

// DefaultWireframeOffset lifts the overlay above the filled mesh.
const DefaultWireframeOffset = 0.1

// Segment is a line between two points.
type Segment struct {
	A, B math.Vec3
}

// ExtractWireframe returns the three edges of every triangle in m, placed
// at z = offset. Edges shared by neighbouring triangles appear twice.
func ExtractWireframe(m *terrain.Mesh, offset float32) []Segment {
	if m == nil || m.TriangleCount() == 0 {
		return nil
	}

	segments := make([]Segment, 0, m.TriangleCount()*3)
	for i := range m.TriangleCount() {
		tri := m.Triangle(i)
		a := lifted(m.Positions[tri[0]], offset)
		b := lifted(m.Positions[tri[1]], offset)
		c := lifted(m.Positions[tri[2]], offset)

		segments = append(segments,
			Segment{a, b},
			Segment{b, c},
			Segment{c, a},
		)
	}
	return segments
}

func lifted(p [3]float32, z float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: z}
}
