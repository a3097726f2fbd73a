package grid

// ValueAt returns the bilinearly interpolated field value at a world
// position. Positions outside the lattice are clamped to its edge.
func (g *Grid) ValueAt(x, y float32) float64 {
	cellFX := (x - g.origin.X) / g.CellSize
	cellFY := (y - g.origin.Y) / g.CellSize

	col := int(cellFX)
	row := int(cellFY)

	// Clamp to valid range
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if col > g.Resolution-1 {
		col = g.Resolution - 1
	}
	if row > g.Resolution-1 {
		row = g.Resolution - 1
	}

	// Fractional position within the cell (0-1)
	fracX := float64(clampf(cellFX-float32(col), 0, 1))
	fracY := float64(clampf(cellFY-float32(row), 0, 1))

	c := g.Cell(row, col)

	// Bottom edge, then top edge, then between them
	bottom := c.Values[BottomLeft]*(1-fracX) + c.Values[BottomRight]*fracX
	top := c.Values[TopLeft]*(1-fracX) + c.Values[TopRight]*fracX
	return bottom*(1-fracY) + top*fracY
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
