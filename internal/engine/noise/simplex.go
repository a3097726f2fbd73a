package noise

import "github.com/ojrac/opensimplex-go"

// Simplex is 3D OpenSimplex noise. Depth is the third coordinate, so
// animating depth morphs the 2D slice continuously.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a simplex field for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Sample implements Sampler. Output is in [-1, 1].
func (s *Simplex) Sample(x, y, depth float64) float64 {
	return clamp(s.noise.Eval3(x, y, depth), -1, 1)
}
