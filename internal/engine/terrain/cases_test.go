package terrain

import (
	"slices"
	"testing"
)

// walkBoundary derives the land polygon of a non-saddle case by walking the
// cell boundary counter-clockwise from the bottom-left corner.
func walkBoundary(c CellCase) polygon {
	in := func(i int) bool { return c&(1<<(i%4)) != 0 }

	var poly polygon
	for i := range 4 {
		if in(i) {
			poly = append(poly, point(i))
		}
		if in(i) != in(i+1) {
			poly = append(poly, e0+point(i))
		}
	}
	return poly
}

func TestCaseTable_MatchesBoundaryWalk(t *testing.T) {
	for c := CellCase(1); c < 15; c++ {
		if c == 5 || c == 10 {
			continue
		}
		polys := caseTable[c]
		if len(polys) != 1 {
			t.Errorf("case %d: expected one polygon, got %d", c, len(polys))
			continue
		}
		if want := walkBoundary(c); !slices.Equal(polys[0], want) {
			t.Errorf("case %d: table %v, boundary walk %v", c, polys[0], want)
		}
	}
}

func TestCaseTable_SaddlesKeepCornersSeparate(t *testing.T) {
	tests := []struct {
		c    CellCase
		want []polygon
	}{
		{5, []polygon{walkBoundary(1), walkBoundary(4)}},
		{10, []polygon{walkBoundary(2), walkBoundary(8)}},
	}

	for _, tt := range tests {
		got := caseTable[tt.c]
		if len(got) != len(tt.want) {
			t.Fatalf("case %d: expected %d polygons, got %d", tt.c, len(tt.want), len(got))
		}
		for i := range got {
			if !slices.Equal(got[i], tt.want[i]) {
				t.Errorf("case %d polygon %d: got %v, want %v", tt.c, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCellCase_TriangleCount(t *testing.T) {
	want := [16]int{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 2}

	for c := range CellCase(16) {
		if got := c.TriangleCount(); got != want[c] {
			t.Errorf("case %d: expected %d triangles, got %d", c, want[c], got)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		values    [4]float64
		threshold float64
		want      CellCase
	}{
		{"all below", [4]float64{-1, -1, -1, -1}, 0, 0},
		{"all above", [4]float64{1, 1, 1, 1}, 0, 15},
		{"bottom-left only", [4]float64{1, -1, -1, -1}, 0, 1},
		{"top-left only", [4]float64{-1, -1, -1, 1}, 0, 8},
		{"bottom edge", [4]float64{0.5, 0.5, -0.5, -0.5}, 0, 3},
		{"equal counts as land", [4]float64{0, -1, -1, -1}, 0, 1},
		{"raised threshold", [4]float64{0.2, 0.4, 0.6, 0.8}, 0.5, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.values, tt.threshold); got != tt.want {
				t.Errorf("Classify(%v, %v) = %d, want %d", tt.values, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestCellCase_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for case 16")
		}
	}()
	CellCase(16).TriangleCount()
}
