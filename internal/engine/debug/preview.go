package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	svg "github.com/ajstarks/svgo"
	"github.com/chewxy/math32"

	"github.com/Faultbox/marching-terrain/internal/engine/terrain"
	"github.com/Faultbox/marching-terrain/internal/engine/water"
	"github.com/Faultbox/marching-terrain/pkg/math"
)

// FrameLayer is one land layer as the preview draws it.
type FrameLayer struct {
	Name      string
	Color     [3]float32
	Z         float32
	Mesh      *terrain.Mesh
	Wireframe []Segment // nil when the overlay is cleared
}

// Frame is everything drawn in one preview image.
type Frame struct {
	Water   *water.Plane
	Layers  []FrameLayer
	Outline []Segment
}

// Preview renders frames to SVG files.
type Preview struct {
	Width  int
	Height int
	Dir    string
	Prefix string
}

// NewPreview creates a preview writer.
func NewPreview(width, height int, dir, prefix string) *Preview {
	return &Preview{
		Width:  width,
		Height: height,
		Dir:    dir,
		Prefix: prefix,
	}
}

// WriteFrame renders frame to <Dir>/<Prefix>_<index>.svg and returns the path.
func (p *Preview) WriteFrame(index int, frame Frame) (string, error) {
	if p.Dir != "" {
		if err := os.MkdirAll(p.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := filepath.Join(p.Dir, fmt.Sprintf("%s_%04d.svg", p.Prefix, index))
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating preview file: %w", err)
	}

	if err := p.Render(f, frame); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing preview file: %w", err)
	}
	return filename, nil
}

// Render draws frame as an SVG document to w.
func (p *Preview) Render(w io.Writer, frame Frame) error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid preview size %dx%d", p.Width, p.Height)
	}

	view := p.viewMatrix(frame)
	canvas := svg.New(w)
	canvas.Start(p.Width, p.Height)
	canvas.Rect(0, 0, p.Width, p.Height, "fill:rgb(255,255,255)")

	if frame.Water != nil {
		corners := frame.Water.Corners()
		xs, ys := project(view, corners[:]...)
		canvas.Polygon(xs, ys, "fill:"+rgb(water.Color, [4]float32{1, 1, 1, 1}))
	}

	layers := slices.Clone(frame.Layers)
	slices.SortStableFunc(layers, func(a, b FrameLayer) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		}
		return 0
	})

	for _, l := range layers {
		if l.Mesh == nil {
			continue
		}
		canvas.Gid(l.Name)
		for i := range l.Mesh.TriangleCount() {
			tri := l.Mesh.Triangle(i)
			var pts [3]math.Vec3
			var shade [4]float32
			for k, idx := range tri {
				pts[k] = math.FromArray(l.Mesh.Positions[idx])
				for c := range shade {
					shade[c] += l.Mesh.Colors[idx][c] / 3
				}
			}
			xs, ys := project(view, pts[:]...)
			canvas.Polygon(xs, ys, "fill:"+rgb(l.Color, shade)+";stroke:none")
		}
		canvas.Gend()
	}

	for _, l := range layers {
		drawSegments(canvas, view, l.Wireframe, "stroke:rgb(0,0,0);stroke-width:1")
	}
	drawSegments(canvas, view, frame.Outline, "stroke:rgb(255,0,0);stroke-width:1;fill:none")

	canvas.End()
	return nil
}

// viewMatrix fits the frame's extent into the image, keeping aspect ratio.
func (p *Preview) viewMatrix(frame Frame) math.Mat4 {
	extent := float32(1)
	if frame.Water != nil {
		extent = max(extent, frame.Water.HalfExtent())
	}
	for _, l := range frame.Layers {
		if l.Mesh == nil {
			continue
		}
		b := l.Mesh.Bounds
		extent = max(extent, -b.Min[0], -b.Min[1], b.Max[0], b.Max[1])
	}

	aspect := float32(p.Width) / float32(p.Height)
	ex, ey := extent, extent
	if aspect > 1 {
		ex *= aspect
	} else {
		ey /= aspect
	}

	proj := math.Ortho(-ex, ex, -ey, ey, -1, 1)
	return math.Viewport(float32(p.Width), float32(p.Height)).Mul(proj)
}

func project(view math.Mat4, pts ...math.Vec3) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, pt := range pts {
		s := view.TransformVec3(pt)
		xs[i] = int(math32.Round(s.X))
		ys[i] = int(math32.Round(s.Y))
	}
	return xs, ys
}

func drawSegments(canvas *svg.SVG, view math.Mat4, segments []Segment, style string) {
	for _, s := range segments {
		xs, ys := project(view, s.A, s.B)
		canvas.Line(xs[0], ys[0], xs[1], ys[1], style)
	}
}

// rgb formats base modulated by shade as an SVG colour.
func rgb(base [3]float32, shade [4]float32) string {
	c := [3]int{}
	for i := range c {
		c[i] = int(math32.Round(clamp01(base[i]*shade[i]) * 255))
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
