package noise

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Kinds(t *testing.T) {
	tests := []struct {
		kind    string
		octaves int
		wantErr bool
	}{
		{kind: KindSimplex, octaves: 1},
		{kind: KindPerlin, octaves: 1},
		{kind: "", octaves: 1},
		{kind: KindSimplex, octaves: 4},
		{kind: "worley", octaves: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := New(tt.kind, 7, tt.octaves)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownField) {
					t.Fatalf("expected ErrUnknownField, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.kind, err)
			}
			if s == nil {
				t.Fatal("expected sampler, got nil")
			}
		})
	}
}

func TestSamplers_RangeAndDeterminism(t *testing.T) {
	samplers := map[string]func() Sampler{
		"simplex": func() Sampler { return NewSimplex(42) },
		"perlin":  func() Sampler { return NewPerlin(42) },
		"fractal": func() Sampler { return NewFractal(NewSimplex(42), DefaultFractalParams()) },
	}

	for name, mk := range samplers {
		t.Run(name, func(t *testing.T) {
			a, b := mk(), mk()
			for i := 0; i < 200; i++ {
				x := float64(i) * 0.173
				y := float64(i) * -0.291
				depth := float64(i) * 0.01

				v := a.Sample(x, y, depth)
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("sample %d out of range: %v", i, v)
				}
				if w := b.Sample(x, y, depth); w != v {
					t.Fatalf("same seed gave %v and %v at sample %d", v, w, i)
				}
			}
		})
	}
}

func TestSimplex_Continuous(t *testing.T) {
	s := NewSimplex(1)
	const step = 1e-4

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.11
		v := s.Sample(x, y, 0.5)

		for _, d := range [][3]float64{{step, 0, 0}, {0, step, 0}, {0, 0, step}} {
			w := s.Sample(x+d[0], y+d[1], 0.5+d[2])
			if math.Abs(w-v) > 0.01 {
				t.Fatalf("field jumped by %v for a step of %v at (%v, %v)", math.Abs(w-v), step, x, y)
			}
		}
	}
}

func TestFractal_PreservesConstant(t *testing.T) {
	f := NewFractal(Constant(0.5), FractalParams{Octaves: 5, Persistence: 0.5, Lacunarity: 2})

	if got := f.Sample(3, 4, 5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("fractal of constant 0.5 = %v, want 0.5", got)
	}
}

func TestFunc_Adapter(t *testing.T) {
	f := Func(func(x, y, depth float64) float64 { return x - y + depth })

	if got := f.Sample(3, 1, 0.5); got != 2.5 {
		t.Errorf("Func.Sample = %v, want 2.5", got)
	}
}
