package noise

import "github.com/aquilax/go-perlin"

// Perlin smoothing and frequency parameters for go-perlin.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = int32(3)
)

// Perlin is 3D Perlin noise.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates a Perlin field for the given seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample implements Sampler.
func (p *Perlin) Sample(x, y, depth float64) float64 {
	return clamp(p.noise.Noise3D(x, y, depth), -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
