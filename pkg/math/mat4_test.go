package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestOrthoCorners(t *testing.T) {
	m := Ortho(-300, 300, -300, 300, -1, 1)

	tests := []struct {
		in   Vec3
		want Vec3
	}{
		{Vec3{-300, -300, 0}, Vec3{-1, -1, 0}},
		{Vec3{300, 300, 0}, Vec3{1, 1, 0}},
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		got := m.TransformVec3(tt.in)
		if got.Sub(tt.want).Length() > 1e-6 {
			t.Errorf("Ortho(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestViewportFlipsY(t *testing.T) {
	vp := Viewport(800, 600)

	topLeft := vp.TransformVec3(Vec3{-1, 1, 0})
	if topLeft.X != 0 || topLeft.Y != 0 {
		t.Errorf("NDC (-1, 1) should map to (0, 0), got (%v, %v)", topLeft.X, topLeft.Y)
	}

	bottomRight := vp.TransformVec3(Vec3{1, -1, 0})
	if bottomRight.X != 800 || bottomRight.Y != 600 {
		t.Errorf("NDC (1, -1) should map to (800, 600), got (%v, %v)", bottomRight.X, bottomRight.Y)
	}
}

// The hand-rolled matrices must agree with mathgl's column-major layout.
func TestMatchesMathGL(t *testing.T) {
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{"ortho", Ortho(-400, 400, -300, 300, -1, 1), mgl32.Ortho(-400, 400, -300, 300, -1, 1)},
		{"translate", Translate(1, 2, 3), mgl32.Translate3D(1, 2, 3)},
		{"scale", Scale(2, -3, 1), mgl32.Scale3D(2, -3, 1)},
		{"viewport", Viewport(800, 600), mgl32.Translate3D(400, 300, 0).Mul4(mgl32.Scale3D(400, -300, 1))},
		{
			"mul",
			Translate(5, 0, 0).Mul(Ortho(-10, 10, -10, 10, -1, 1)),
			mgl32.Translate3D(5, 0, 0).Mul4(mgl32.Ortho(-10, 10, -10, 10, -1, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !mgl32.Mat4(tt.got).ApproxEqualThreshold(tt.want, 1e-6) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
