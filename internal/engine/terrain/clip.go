package terrain

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ClipToRadius returns a copy of m bounded to a disc of the given radius
// around the origin. Triangles whose three vertices all lie outside the
// radius are dropped; the remaining vertices outside it are pulled onto the
// circle. Cull decisions use the unclamped positions. m is not modified.
func ClipToRadius(m *Mesh, radius float32) (*Mesh, error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("clipping to radius %v: %w", radius, err)
	}

	out := &Mesh{
		Normals: append([][3]float32(nil), m.Normals...),
		UVs:     append([][2]float32(nil), m.UVs...),
		Colors:  append([][4]float32(nil), m.Colors...),
		Indices: make([]uint32, 0, len(m.Indices)),
	}

	for i := range m.TriangleCount() {
		tri := m.Triangle(i)
		if outside(m.Positions[tri[0]], radius) &&
			outside(m.Positions[tri[1]], radius) &&
			outside(m.Positions[tri[2]], radius) {
			continue
		}
		out.Indices = append(out.Indices, tri[0], tri[1], tri[2])
	}

	out.Positions = clampPositions(m.Positions, radius)
	out.Bounds = computeBounds(out.Positions)
	return out, nil
}

// ClampToRadius returns a copy of m with every vertex pulled inside the
// radius. No triangles are removed.
func ClampToRadius(m *Mesh, radius float32) (*Mesh, error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("clamping to radius %v: %w", radius, err)
	}

	out := &Mesh{
		Positions: clampPositions(m.Positions, radius),
		Normals:   append([][3]float32(nil), m.Normals...),
		UVs:       append([][2]float32(nil), m.UVs...),
		Colors:    append([][4]float32(nil), m.Colors...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	out.Bounds = computeBounds(out.Positions)
	return out, nil
}

func checkRadius(radius float32) error {
	if !(radius > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return nil
}

// PlanarDistance returns the distance of p from the origin in the XY plane.
func PlanarDistance(p [3]float32) float32 {
	return math32.Hypot(p[0], p[1])
}

func outside(p [3]float32, radius float32) bool {
	return PlanarDistance(p) > radius
}

// clampPositions rescales XY of every position beyond radius onto the
// circle, keeping Z.
func clampPositions(positions [][3]float32, radius float32) [][3]float32 {
	out := make([][3]float32, len(positions))
	for i, p := range positions {
		d := PlanarDistance(p)
		if d > radius {
			s := radius / d
			p[0] *= s
			p[1] *= s
		}
		out[i] = p
	}
	return out
}
