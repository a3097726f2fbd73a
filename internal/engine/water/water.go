// Package water provides the water plane drawn beneath the land layers.
package water

import "github.com/Faultbox/marching-terrain/pkg/math"

// Color is the water fill colour (RGB, 0-1).
var Color = [3]float32{0.68, 0.97, 0.99}

// DefaultPadding extends the plane beyond the outermost land layer.
const DefaultPadding = 50.0

// Plane holds water plane geometry in the XY plane.
type Plane struct {
	Vertices []float32 // Flat array: x,y,z for each vertex (4 vertices)
	Level    float32   // Z of the plane
}

// BuildPlane creates a quad covering the given bounds at z = level.
// Order: BL, BR, TR, TL, counter-clockwise seen from +Z.
func BuildPlane(minX, maxX, minY, maxY, level float32) *Plane {
	return &Plane{
		Vertices: []float32{
			minX, minY, level,
			maxX, minY, level,
			maxX, maxY, level,
			minX, maxY, level,
		},
		Level: level,
	}
}

// BuildPlaneWithPadding creates a plane with padding around the bounds.
func BuildPlaneWithPadding(minX, maxX, minY, maxY, level, padding float32) *Plane {
	return BuildPlane(
		minX-padding,
		maxX+padding,
		minY-padding,
		maxY+padding,
		level,
	)
}

// BuildDiscBackdrop creates a square plane enclosing a disc of the given
// radius around the origin, plus padding.
func BuildDiscBackdrop(radius, level, padding float32) *Plane {
	return BuildPlaneWithPadding(-radius, radius, -radius, radius, level, padding)
}

// Corners returns the four plane vertices.
func (p *Plane) Corners() [4]math.Vec3 {
	var c [4]math.Vec3
	for i := range c {
		c[i] = math.Vec3{X: p.Vertices[i*3], Y: p.Vertices[i*3+1], Z: p.Vertices[i*3+2]}
	}
	return c
}

// HalfExtent returns the largest absolute X or Y coordinate of the plane.
func (p *Plane) HalfExtent() float32 {
	var e float32
	for _, c := range p.Corners() {
		e = max(e, c.X, -c.X, c.Y, -c.Y)
	}
	return e
}
