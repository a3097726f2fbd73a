package terrain

import "fmt"

// CellCase is the 4-bit corner classification of a cell. Bit i is set when
// corner i (grid.BottomLeft..grid.TopLeft) is at or above the threshold.
type CellCase uint8

// Classify returns the case for the given corner values.
func Classify(values [4]float64, threshold float64) CellCase {
	var c CellCase
	for i, v := range values {
		if v >= threshold {
			c |= 1 << i
		}
	}
	return c
}

// point references either a cell corner or a point on a cell edge.
// Edge i joins corner i and corner (i+1)%4.
type point uint8

const (
	c0 point = iota // bottom-left
	c1              // bottom-right
	c2              // top-right
	c3              // top-left
	e0              // bottom edge
	e1              // right edge
	e2              // top edge
	e3              // left edge
)

func (p point) isEdge() bool { return p >= e0 }

// polygon is a convex land region listed counter-clockwise.
type polygon []point

// caseTable lists the land polygons of each case. Saddles (5, 10) keep the
// two land corners separate.
var caseTable = [16][]polygon{
	0:  nil,
	1:  {{c0, e0, e3}},
	2:  {{e0, c1, e1}},
	3:  {{c0, c1, e1, e3}},
	4:  {{e1, c2, e2}},
	5:  {{c0, e0, e3}, {e1, c2, e2}},
	6:  {{e0, c1, c2, e2}},
	7:  {{c0, c1, c2, e2, e3}},
	8:  {{e2, c3, e3}},
	9:  {{c0, e0, e2, c3}},
	10: {{e0, c1, e1}, {e2, c3, e3}},
	11: {{c0, c1, e1, e2, c3}},
	12: {{e1, c2, c3, e3}},
	13: {{c0, e0, e1, c2, c3}},
	14: {{e0, c1, c2, c3, e3}},
	15: {{c0, c1, c2, c3}},
}

func (c CellCase) polygons() []polygon {
	if c > 15 {
		panic(fmt.Sprintf("terrain: cell case %d outside [0, 15]", c))
	}
	return caseTable[c]
}

// TriangleCount returns how many triangles the case emits.
func (c CellCase) TriangleCount() int {
	n := 0
	for _, poly := range c.polygons() {
		n += len(poly) - 2
	}
	return n
}
