// Package noise provides continuous scalar fields sampled by the grid builder.
package noise

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by New for an unrecognised field kind.
var ErrUnknownField = errors.New("unknown field kind")

// Sampler evaluates a continuous scalar field at (x, y) on the slice
// selected by depth. Output is nominally in [-1, 1]; the midline is 0.
type Sampler interface {
	Sample(x, y, depth float64) float64
}

// Func adapts a plain function to the Sampler interface.
type Func func(x, y, depth float64) float64

// Sample calls f.
func (f Func) Sample(x, y, depth float64) float64 {
	return f(x, y, depth)
}

// Constant is a field with the same value everywhere.
type Constant float64

// Sample returns the constant value.
func (c Constant) Sample(_, _, _ float64) float64 {
	return float64(c)
}

// Field kinds accepted by New.
const (
	KindSimplex = "simplex"
	KindPerlin  = "perlin"
)

// New creates a sampler by kind name. Octaves above 1 wrap the base field
// in a Fractal with the default persistence and lacunarity.
func New(kind string, seed int64, octaves int) (Sampler, error) {
	var base Sampler
	switch kind {
	case KindSimplex, "":
		base = NewSimplex(seed)
	case KindPerlin:
		base = NewPerlin(seed)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, kind)
	}

	if octaves <= 1 {
		return base, nil
	}
	params := DefaultFractalParams()
	params.Octaves = octaves
	return NewFractal(base, params), nil
}
