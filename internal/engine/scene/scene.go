// Package scene owns the land layers and rebuilds them on demand.
// Each recompute builds the field grid and triangulates it once, then clips
// the result to every layer's radius.
package scene

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/marching-terrain/internal/engine/debug"
	"github.com/Faultbox/marching-terrain/internal/engine/grid"
	"github.com/Faultbox/marching-terrain/internal/engine/noise"
	"github.com/Faultbox/marching-terrain/internal/engine/terrain"
	"github.com/Faultbox/marching-terrain/internal/logger"
)

// Params contains the recompute inputs shared by every layer.
type Params struct {
	Resolution    int
	Depth         float64
	Interpolated  bool
	SamplingScale float64
	Shading       float32
	Threshold     float64
	CellSize      float32
	Wireframe     bool
}

// DefaultParams returns the default recompute inputs.
func DefaultParams() Params {
	return Params{
		Resolution:    32,
		Depth:         0,
		Interpolated:  true,
		SamplingScale: 0.12,
		Shading:       0.54,
		Threshold:     0,
		CellSize:      20,
		Wireframe:     false,
	}
}

func (p Params) grid() grid.Params {
	return grid.Params{
		Resolution:    p.Resolution,
		CellSize:      p.CellSize,
		SamplingScale: p.SamplingScale,
		Depth:         p.Depth,
	}
}

func (p Params) options() terrain.Options {
	return terrain.Options{
		Threshold:    p.Threshold,
		Interpolated: p.Interpolated,
		Shading:      p.Shading,
	}
}

// Layer is one land patch clipped to a disc around the origin.
type Layer struct {
	Name   string
	Radius float32
	Color  [3]float32
	Z      float32 // Draw height; higher layers are drawn over lower ones
}

// DefaultLayers returns the grass and rock layers.
func DefaultLayers() []Layer {
	return []Layer{
		{Name: "grass", Radius: 300, Color: [3]float32{0.61, 0.86, 0.26}, Z: 0.2},
		{Name: "rock", Radius: 140, Color: [3]float32{0.53, 0.5, 0.43}, Z: 0.3},
	}
}

// Update is the result of a recompute for one layer.
type Update struct {
	Layer     Layer
	Mesh      *terrain.Mesh
	Wireframe []debug.Segment
	// ClearOverlay is set when wireframe is disabled; consumers drop any
	// overlay they kept from an earlier recompute.
	ClearOverlay bool
}

// Scene holds the sampler, the layers and the last published meshes.
// It is not safe for concurrent use.
type Scene struct {
	sampler   noise.Sampler
	layers    []Layer
	published []Update
	log       *zap.Logger
}

// New creates a scene. Every layer radius must be positive.
func New(sampler noise.Sampler, layers ...Layer) (*Scene, error) {
	if sampler == nil {
		return nil, errors.New("scene: nil sampler")
	}
	for _, l := range layers {
		if !(l.Radius > 0) {
			return nil, fmt.Errorf("layer %q: %w: %v", l.Name, terrain.ErrInvalidRadius, l.Radius)
		}
	}

	return &Scene{
		sampler: sampler,
		layers:  append([]Layer(nil), layers...),
		log:     logger.Named("scene"),
	}, nil
}

// Recompute rebuilds every layer from p. Results are published only when all
// layers succeed; on error the previously published meshes are kept.
func (s *Scene) Recompute(p Params) ([]Update, error) {
	start := time.Now()

	updates, err := s.build(p)
	if err != nil {
		s.log.Warn("recompute rejected",
			zap.Int("resolution", p.Resolution),
			zap.Float64("depth", p.Depth),
			zap.Error(err))
		return nil, err
	}

	s.published = updates

	if ce := s.log.Check(zap.DebugLevel, "recomputed"); ce != nil {
		fields := []zap.Field{
			zap.Int("resolution", p.Resolution),
			zap.Float64("depth", p.Depth),
			zap.Bool("interpolated", p.Interpolated),
			zap.Duration("took", time.Since(start)),
		}
		for _, u := range updates {
			fields = append(fields, zap.Int(u.Layer.Name+"_triangles", u.Mesh.TriangleCount()))
		}
		ce.Write(fields...)
	}

	return updates, nil
}

func (s *Scene) build(p Params) ([]Update, error) {
	g, err := grid.Build(s.sampler, p.grid())
	if err != nil {
		return nil, err
	}

	land, err := terrain.Triangulate(g, p.options())
	if err != nil {
		return nil, err
	}

	updates := make([]Update, 0, len(s.layers))
	for _, l := range s.layers {
		mesh, err := terrain.ClipToRadius(land, l.Radius)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}

		u := Update{Layer: l, Mesh: mesh, ClearOverlay: !p.Wireframe}
		if p.Wireframe {
			u.Wireframe = debug.ExtractWireframe(mesh, debug.DefaultWireframeOffset)
		}
		updates = append(updates, u)
	}
	return updates, nil
}

// Layers returns the last published state of every layer, or nil before the
// first successful recompute.
func (s *Scene) Layers() []Update {
	return s.published
}

// MaxRadius returns the largest layer radius.
func (s *Scene) MaxRadius() float32 {
	var r float32
	for _, l := range s.layers {
		r = max(r, l.Radius)
	}
	return r
}
