// Package grid lays out the sample lattice that marching squares walks.
package grid

import (
	"errors"
	"fmt"

	"github.com/Faultbox/marching-terrain/internal/engine/noise"
	"github.com/Faultbox/marching-terrain/pkg/math"
)

// MinResolution is the smallest accepted number of cells per axis.
const MinResolution = 3

// Grid parameter errors.
var (
	ErrInvalidResolution = errors.New("invalid grid resolution")
	ErrInvalidScale      = errors.New("invalid sampling scale")
	ErrInvalidCellSize   = errors.New("invalid cell size")
)

// Corner indices, counter-clockwise from the bottom-left.
// Case bits and the triangulation table depend on this order.
const (
	BottomLeft  = 0
	BottomRight = 1
	TopRight    = 2
	TopLeft     = 3
)

// Params describes one lattice.
type Params struct {
	Resolution    int     // Cells per axis
	CellSize      float32 // World units per cell
	SamplingScale float64 // Grid index to field coordinate factor (zoom)
	Depth         float64 // Field slice coordinate
}

// Validate reports the first invalid parameter.
func (p Params) Validate() error {
	if p.Resolution < MinResolution {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidResolution, p.Resolution, MinResolution)
	}
	if !(p.SamplingScale > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, p.SamplingScale)
	}
	if !(p.CellSize > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCellSize, p.CellSize)
	}
	return nil
}

// Cell is one grid square with its corner samples.
type Cell struct {
	Row, Col int
	Values   [4]float64   // Indexed by BottomLeft..TopLeft
	Corners  [4]math.Vec2 // World positions, same order
}

// Grid holds (n+1)² field samples centred on the origin.
// Row 0 is the bottom row; y grows with row.
type Grid struct {
	Resolution int
	CellSize   float32
	values     []float64
	origin     math.Vec2
}

// Build samples s on the lattice described by p.
func Build(s noise.Sampler, p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Resolution
	stride := n + 1
	half := float32(n) / 2

	g := &Grid{
		Resolution: n,
		CellSize:   p.CellSize,
		values:     make([]float64, stride*stride),
		origin:     math.Vec2{X: -half * p.CellSize, Y: -half * p.CellSize},
	}

	for row := range stride {
		for col := range stride {
			g.values[row*stride+col] = s.Sample(
				float64(col)*p.SamplingScale,
				float64(row)*p.SamplingScale,
				p.Depth,
			)
		}
	}

	return g, nil
}

// SampleCount returns the number of lattice points.
func (g *Grid) SampleCount() int {
	return len(g.values)
}

// CellCount returns the number of cells.
func (g *Grid) CellCount() int {
	return g.Resolution * g.Resolution
}

// Value returns the sample at lattice point (row, col).
func (g *Grid) Value(row, col int) float64 {
	return g.values[row*(g.Resolution+1)+col]
}

// Point returns the world position of lattice point (row, col).
func (g *Grid) Point(row, col int) math.Vec2 {
	return math.Vec2{
		X: g.origin.X + float32(col)*g.CellSize,
		Y: g.origin.Y + float32(row)*g.CellSize,
	}
}

// Cell returns the cell at (row, col). Panics if out of range.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= g.Resolution || col >= g.Resolution {
		panic(fmt.Sprintf("grid: cell (%d, %d) outside %dx%d grid", row, col, g.Resolution, g.Resolution))
	}

	return Cell{
		Row: row,
		Col: col,
		Values: [4]float64{
			g.Value(row, col),
			g.Value(row, col+1),
			g.Value(row+1, col+1),
			g.Value(row+1, col),
		},
		Corners: [4]math.Vec2{
			g.Point(row, col),
			g.Point(row, col+1),
			g.Point(row+1, col+1),
			g.Point(row+1, col),
		},
	}
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.CellCount())
	for row := range g.Resolution {
		for col := range g.Resolution {
			cells = append(cells, g.Cell(row, col))
		}
	}
	return cells
}

// Bounds returns the world-space min and max corners of the lattice.
func (g *Grid) Bounds() (min, max math.Vec2) {
	return g.Point(0, 0), g.Point(g.Resolution, g.Resolution)
}

// Extent returns the world-space width of the lattice (it is square).
func (g *Grid) Extent() float32 {
	return float32(g.Resolution) * g.CellSize
}
