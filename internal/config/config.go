// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/marching-terrain/internal/engine/grid"
	"github.com/Faultbox/marching-terrain/internal/engine/noise"
	"github.com/Faultbox/marching-terrain/internal/engine/terrain"
)

// Config holds all generator settings.
type Config struct {
	Terrain   TerrainConfig   `yaml:"terrain"`
	Animation AnimationConfig `yaml:"animation"`
	Layers    []LayerConfig   `yaml:"layers"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TerrainConfig holds the field and triangulation settings.
type TerrainConfig struct {
	Resolution    int     `yaml:"resolution"`
	Depth         float64 `yaml:"depth"`
	Interpolated  bool    `yaml:"interpolated"`
	SamplingScale float64 `yaml:"sampling_scale"`
	Shading       float32 `yaml:"shading"`
	Threshold     float64 `yaml:"threshold"`
	CellSize      float32 `yaml:"cell_size"`
	Wireframe     bool    `yaml:"wireframe"`
	Field         string  `yaml:"field"` // simplex | perlin
	Seed          int64   `yaml:"seed"`
	Octaves       int     `yaml:"octaves"`
}

// AnimationConfig controls how the depth moves between frames.
type AnimationConfig struct {
	Enabled bool    `yaml:"enabled"`
	Speed   float64 `yaml:"speed"`
	Frames  int     `yaml:"frames"`
}

// LayerConfig describes one clipped land layer.
type LayerConfig struct {
	Name   string     `yaml:"name"`
	Radius float32    `yaml:"radius"`
	Z      float32    `yaml:"z"`
	Color  [3]float32 `yaml:"color,flow"`
}

// PreviewConfig holds SVG output settings.
type PreviewConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Resolution:    32,
			Depth:         0,
			Interpolated:  true,
			SamplingScale: 0.12,
			Shading:       0.54,
			Threshold:     0,
			CellSize:      20,
			Wireframe:     false,
			Field:         noise.KindSimplex,
			Seed:          1,
			Octaves:       1,
		},
		Animation: AnimationConfig{
			Enabled: false,
			Speed:   0.01,
			Frames:  1,
		},
		Layers: []LayerConfig{
			{Name: "grass", Radius: 300, Z: 0.2, Color: [3]float32{0.61, 0.86, 0.26}},
			{Name: "rock", Radius: 140, Z: 0.3, Color: [3]float32{0.53, 0.5, 0.43}},
		},
		Preview: PreviewConfig{
			Width:  800,
			Height: 800,
			Dir:    "out",
			Prefix: "frame",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var errs []error

	t := c.Terrain
	if t.Resolution < grid.MinResolution {
		errs = append(errs, fmt.Errorf("terrain.resolution: %w: %d (minimum %d)",
			grid.ErrInvalidResolution, t.Resolution, grid.MinResolution))
	}
	if !(t.SamplingScale > 0) {
		errs = append(errs, fmt.Errorf("terrain.sampling_scale: %w: %v", grid.ErrInvalidScale, t.SamplingScale))
	}
	if !(t.CellSize > 0) {
		errs = append(errs, fmt.Errorf("terrain.cell_size: %w: %v", grid.ErrInvalidCellSize, t.CellSize))
	}
	switch t.Field {
	case "", noise.KindSimplex, noise.KindPerlin:
	default:
		errs = append(errs, fmt.Errorf("terrain.field: %w: %q", noise.ErrUnknownField, t.Field))
	}

	if len(c.Layers) == 0 {
		errs = append(errs, errors.New("layers: at least one layer is required"))
	}
	for i, l := range c.Layers {
		if !(l.Radius > 0) {
			errs = append(errs, fmt.Errorf("layers[%d] %q: %w: %v", i, l.Name, terrain.ErrInvalidRadius, l.Radius))
		}
	}

	if c.Animation.Frames < 1 {
		errs = append(errs, fmt.Errorf("animation.frames: must be at least 1, got %d", c.Animation.Frames))
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview: invalid size %dx%d", c.Preview.Width, c.Preview.Height))
	}

	return errors.Join(errs...)
}
