package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/marching-terrain/internal/engine/terrain"
	"github.com/Faultbox/marching-terrain/internal/engine/water"
	"github.com/Faultbox/marching-terrain/pkg/math"
)

// twoTriangles is a unit quad split along its diagonal.
func twoTriangles() *terrain.Mesh {
	n := [3]float32{0, 0, 1}
	white := [4]float32{1, 1, 1, 1}
	return &terrain.Mesh{
		Positions: [][3]float32{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}},
		Normals:   [][3]float32{n, n, n, n},
		UVs:       [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Colors:    [][4]float32{white, white, white, white},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
		Bounds:    terrain.Bounds{Min: [3]float32{0, 0, 0}, Max: [3]float32{10, 10, 0}},
	}
}

func TestExtractWireframe(t *testing.T) {
	segs := ExtractWireframe(twoTriangles(), DefaultWireframeOffset)

	if len(segs) != 6 {
		t.Fatalf("expected 6 segments (3 per triangle), got %d", len(segs))
	}

	want := []Segment{
		{math.Vec3{X: 0, Y: 0, Z: 0.1}, math.Vec3{X: 10, Y: 0, Z: 0.1}},
		{math.Vec3{X: 10, Y: 0, Z: 0.1}, math.Vec3{X: 10, Y: 10, Z: 0.1}},
		{math.Vec3{X: 10, Y: 10, Z: 0.1}, math.Vec3{X: 0, Y: 0, Z: 0.1}},
	}
	for i, w := range want {
		if segs[i] != w {
			t.Errorf("segment %d = %v, want %v", i, segs[i], w)
		}
	}

	// The shared diagonal appears in both triangles.
	if segs[2].A != segs[3].B || segs[2].B != segs[3].A {
		t.Errorf("expected the diagonal twice, got %v and %v", segs[2], segs[3])
	}
}

func TestExtractWireframe_Empty(t *testing.T) {
	if segs := ExtractWireframe(&terrain.Mesh{}, 0.1); segs != nil {
		t.Errorf("expected nil for empty mesh, got %v", segs)
	}
	if segs := ExtractWireframe(nil, 0.1); segs != nil {
		t.Errorf("expected nil for nil mesh, got %v", segs)
	}
}

func TestBoundsOutline(t *testing.T) {
	segs := BoundsOutline(terrain.Bounds{Min: [3]float32{-5, -5, 0}, Max: [3]float32{5, 5, 0}}, 0.2)

	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}
	for i, s := range segs {
		if s.B != segs[(i+1)%4].A {
			t.Errorf("outline is not closed at segment %d", i)
		}
		if s.A.Z != 0.2 {
			t.Errorf("segment %d not at z 0.2", i)
		}
	}
}

func TestCircleOutline(t *testing.T) {
	segs := CircleOutline(100, 0, 32)

	if len(segs) != 32 {
		t.Fatalf("expected 32 segments, got %d", len(segs))
	}
	for i, s := range segs {
		if l := s.A.Length(); l < 99.99 || l > 100.01 {
			t.Errorf("point %d at distance %v, want 100", i, l)
		}
	}
}

func TestPreview_Render(t *testing.T) {
	mesh := twoTriangles()
	frame := Frame{
		Water: water.BuildDiscBackdrop(10, 0, 5),
		Layers: []FrameLayer{
			{Name: "rock", Color: [3]float32{0.53, 0.5, 0.43}, Z: 0.3, Mesh: mesh},
			{Name: "grass", Color: [3]float32{0.61, 0.86, 0.26}, Z: 0.2, Mesh: mesh, Wireframe: ExtractWireframe(mesh, 0.1)},
		},
	}

	var buf bytes.Buffer
	p := NewPreview(200, 100, "", "frame")
	if err := p.Render(&buf, frame); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<svg") {
		t.Fatal("output is not an SVG document")
	}
	// Water plus two triangles per layer.
	if got := strings.Count(out, "<polygon"); got != 5 {
		t.Errorf("expected 5 polygons, got %d", got)
	}
	if got := strings.Count(out, "<line"); got != 6 {
		t.Errorf("expected 6 wireframe lines, got %d", got)
	}
	// Lower layers are drawn first.
	if strings.Index(out, `id="grass"`) > strings.Index(out, `id="rock"`) {
		t.Error("expected grass (z 0.2) before rock (z 0.3)")
	}
}

func TestPreview_RenderInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPreview(0, 100, "", "x").Render(&buf, Frame{}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestPreview_WriteFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	p := NewPreview(64, 64, dir, "frame")

	path, err := p.WriteFrame(7, Frame{Layers: []FrameLayer{{Name: "grass", Mesh: twoTriangles()}}})
	if err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if filepath.Base(path) != "frame_0007.svg" {
		t.Errorf("unexpected filename %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading preview: %v", err)
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Error("preview file is incomplete")
	}
}
