package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/marching-terrain/internal/config"
	"github.com/Faultbox/marching-terrain/internal/engine/debug"
	"github.com/Faultbox/marching-terrain/internal/engine/noise"
	"github.com/Faultbox/marching-terrain/internal/engine/scene"
	"github.com/Faultbox/marching-terrain/internal/engine/water"
	"github.com/Faultbox/marching-terrain/internal/logger"
)

// waterLevel keeps the backdrop under every land layer.
const waterLevel = -0.1

// run renders cfg.Animation.Frames frames and returns the written paths.
func run(cfg *config.Config) ([]string, error) {
	sampler, err := noise.New(cfg.Terrain.Field, cfg.Terrain.Seed, cfg.Terrain.Octaves)
	if err != nil {
		return nil, err
	}

	sc, err := scene.New(sampler, sceneLayers(cfg)...)
	if err != nil {
		return nil, err
	}

	params := sceneParams(cfg)
	anim := scene.NewAnimator(cfg.Animation.Speed)
	preview := debug.NewPreview(cfg.Preview.Width, cfg.Preview.Height, cfg.Preview.Dir, cfg.Preview.Prefix)
	backdrop := water.BuildDiscBackdrop(sc.MaxRadius(), waterLevel, water.DefaultPadding)

	frames := max(cfg.Animation.Frames, 1)
	if !cfg.Animation.Enabled {
		frames = 1
	}

	written := make([]string, 0, frames)
	for i := range frames {
		updates, err := sc.Recompute(params)
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", i, err)
		}

		path, err := preview.WriteFrame(i, buildFrame(backdrop, updates))
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", i, err)
		}
		written = append(written, path)
		logger.Debug("frame written", zap.Int("frame", i), zap.Float64("depth", params.Depth), zap.String("path", path))

		if cfg.Animation.Enabled {
			anim.Advance(&params)
		}
	}

	return written, nil
}

func sceneParams(cfg *config.Config) scene.Params {
	t := cfg.Terrain
	return scene.Params{
		Resolution:    t.Resolution,
		Depth:         t.Depth,
		Interpolated:  t.Interpolated,
		SamplingScale: t.SamplingScale,
		Shading:       t.Shading,
		Threshold:     t.Threshold,
		CellSize:      t.CellSize,
		Wireframe:     t.Wireframe,
	}
}

func sceneLayers(cfg *config.Config) []scene.Layer {
	layers := make([]scene.Layer, len(cfg.Layers))
	for i, l := range cfg.Layers {
		layers[i] = scene.Layer{Name: l.Name, Radius: l.Radius, Color: l.Color, Z: l.Z}
	}
	return layers
}

func buildFrame(backdrop *water.Plane, updates []scene.Update) debug.Frame {
	frame := debug.Frame{Water: backdrop}
	for _, u := range updates {
		frame.Layers = append(frame.Layers, debug.FrameLayer{
			Name:      u.Layer.Name,
			Color:     u.Layer.Color,
			Z:         u.Layer.Z,
			Mesh:      u.Mesh,
			Wireframe: u.Wireframe,
		})
		if !u.ClearOverlay {
			frame.Outline = append(frame.Outline, debug.CircleOutline(u.Layer.Radius, u.Layer.Z, 64)...)
		}
	}
	return frame
}
