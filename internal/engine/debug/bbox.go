package debug

import (
	"github.com/Faultbox/marching-terrain/internal/engine/terrain"
	"github.com/Faultbox/marching-terrain/pkg/math"
)

// BoundsOutline returns the four edges of the XY rectangle of b at height z.
func BoundsOutline(b terrain.Bounds, z float32) []Segment {
	minX, minY := b.Min[0], b.Min[1]
	maxX, maxY := b.Max[0], b.Max[1]

	bl := math.Vec3{X: minX, Y: minY, Z: z}
	br := math.Vec3{X: maxX, Y: minY, Z: z}
	tr := math.Vec3{X: maxX, Y: maxY, Z: z}
	tl := math.Vec3{X: minX, Y: maxY, Z: z}

	return []Segment{
		{bl, br},
		{br, tr},
		{tr, tl},
		{tl, bl},
	}
}

// CircleOutline approximates the circle of the given radius around the
// origin with n segments at height z.
func CircleOutline(radius, z float32, n int) []Segment {
	if n < 3 {
		n = 3
	}

	points := make([]math.Vec3, n)
	for i := range n {
		dir := math.Angle(float32(i) / float32(n) * 2 * math.Pi)
		points[i] = dir.Scale(radius).Extend(z)
	}

	segments := make([]Segment, n)
	for i := range n {
		segments[i] = Segment{points[i], points[(i+1)%n]}
	}
	return segments
}
