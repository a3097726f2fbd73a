package terrain

import (
	"fmt"

	"github.com/Faultbox/marching-terrain/internal/engine/grid"
	"github.com/Faultbox/marching-terrain/pkg/math"
)

// Options controls triangulation.
type Options struct {
	Threshold    float64 // Land at or above, water below
	Interpolated bool    // Place boundary vertices at the interpolated crossing instead of edge midpoints
	Shading      float32 // 0..1, darkens vertex colour toward low field values
}

// Triangulate runs marching squares over every cell of g and returns the
// land mesh. The mesh is validated before it is returned.
func Triangulate(g *grid.Grid, opts Options) (*Mesh, error) {
	min, _ := g.Bounds()
	b := builder{
		grid:   g,
		opts:   opts,
		min:    min,
		extent: g.Extent(),
		mesh:   &Mesh{},
	}

	for _, cell := range g.Cells() {
		b.addCell(cell)
	}

	if err := b.mesh.Validate(); err != nil {
		return nil, fmt.Errorf("triangulating %dx%d grid: %w", g.Resolution, g.Resolution, err)
	}
	b.mesh.Bounds = computeBounds(b.mesh.Positions)
	return b.mesh, nil
}

type builder struct {
	grid   *grid.Grid
	opts   Options
	min    math.Vec2
	extent float32
	mesh   *Mesh
}

// addCell appends the cell's land polygons as triangle fans.
func (b *builder) addCell(c grid.Cell) {
	for _, poly := range cellPolygons(c, b.opts) {
		base := b.vertex(poly[0])
		prev := b.vertex(poly[1])
		for _, p := range poly[2:] {
			next := b.vertex(p)
			b.mesh.Indices = append(b.mesh.Indices, base, prev, next)
			prev = next
		}
	}
}

func (b *builder) vertex(p math.Vec2) uint32 {
	uv := [2]float32{
		(p.X - b.min.X) / b.extent,
		(p.Y - b.min.Y) / b.extent,
	}
	return b.mesh.addVertex(p.Extend(0).Array(), math.UnitZ.Array(), uv, b.color(p))
}

// color maps the local field value to a grey level; Shading 0 keeps
// everything white, Shading 1 takes the lowest values to black.
func (b *builder) color(p math.Vec2) [4]float32 {
	v := b.grid.ValueAt(p.X, p.Y)
	n := float32((v + 1) / 2)
	n = clampf(n, 0, 1)
	shade := clampf(b.opts.Shading, 0, 1)
	l := 1 - shade*(1-n)
	return [4]float32{l, l, l, 1}
}

// cellPolygons resolves the case table entries of a cell to world positions.
func cellPolygons(c grid.Cell, opts Options) [][]math.Vec2 {
	polys := Classify(c.Values, opts.Threshold).polygons()
	if len(polys) == 0 {
		return nil
	}

	out := make([][]math.Vec2, 0, len(polys))
	for _, poly := range polys {
		pts := make([]math.Vec2, len(poly))
		for i, p := range poly {
			pts[i] = resolve(c, p, opts)
		}
		out = append(out, pts)
	}
	return out
}

func resolve(c grid.Cell, p point, opts Options) math.Vec2 {
	if !p.isEdge() {
		return c.Corners[p]
	}

	i := int(p - e0)
	j := (i + 1) % 4
	t := float32(0.5)
	if opts.Interpolated {
		t = crossing(c.Values[i], c.Values[j], opts.Threshold)
	}
	return c.Corners[i].Lerp(c.Corners[j], t)
}

// crossing returns the fraction along v0 → v1 where the field meets the
// threshold, clamped to [0, 1]. Equal values give the midpoint.
func crossing(v0, v1, threshold float64) float32 {
	if v1 == v0 {
		return 0.5
	}
	t := (threshold - v0) / (v1 - v0)
	if !(t >= 0) { // NaN included
		return 0
	}
	if t > 1 {
		return 1
	}
	return float32(t)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
