package noise

// FractalParams configures octave summation.
type FractalParams struct {
	Octaves     int
	Persistence float64 // Amplitude multiplier per octave
	Lacunarity  float64 // Frequency multiplier per octave
}

// DefaultFractalParams returns the usual persistence 0.5, lacunarity 2.
func DefaultFractalParams() FractalParams {
	return FractalParams{
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Fractal sums several octaves of a base field. The sum is divided by the
// total amplitude so the output range matches the base field.
type Fractal struct {
	base   Sampler
	params FractalParams
	norm   float64
}

// NewFractal wraps base. Octaves below 1 are treated as 1.
func NewFractal(base Sampler, params FractalParams) *Fractal {
	if params.Octaves < 1 {
		params.Octaves = 1
	}

	var total float64
	amplitude := 1.0
	for range params.Octaves {
		total += amplitude
		amplitude *= params.Persistence
	}

	return &Fractal{base: base, params: params, norm: total}
}

// Sample implements Sampler.
func (f *Fractal) Sample(x, y, depth float64) float64 {
	var sum float64
	amplitude := 1.0
	frequency := 1.0
	for range f.params.Octaves {
		sum += amplitude * f.base.Sample(x*frequency, y*frequency, depth*frequency)
		amplitude *= f.params.Persistence
		frequency *= f.params.Lacunarity
	}
	return sum / f.norm
}
