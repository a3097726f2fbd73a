package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagResolution  = flag.Int("resolution", 0, "Grid cells per axis")
	flagScale       = flag.Float64("scale", 0, "Field sampling scale")
	flagMidpoint    = flag.Bool("midpoint", false, "Place boundary vertices at edge midpoints")
	flagWireframe   = flag.Bool("wireframe", false, "Draw the wireframe overlay")
	flagField       = flag.String("field", "", "Field kind (simplex, perlin)")
	flagFrames      = flag.Int("frames", 0, "Number of frames to render; more than one enables animation")
	flagOut         = flag.String("out", "", "Preview output directory")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")

	// nil unless -depth was given; 0 is a valid depth.
	flagDepth *float64
)

func init() {
	flag.Func("depth", "Starting field depth", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		flagDepth = &v
		return nil
	})
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, or "".
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagResolution > 0 {
		cfg.Terrain.Resolution = *flagResolution
	}
	if flagDepth != nil {
		cfg.Terrain.Depth = *flagDepth
	}
	if *flagScale > 0 {
		cfg.Terrain.SamplingScale = *flagScale
	}
	if *flagMidpoint {
		cfg.Terrain.Interpolated = false
	}
	if *flagWireframe {
		cfg.Terrain.Wireframe = true
	}
	if *flagField != "" {
		cfg.Terrain.Field = *flagField
	}
	if *flagFrames > 0 {
		cfg.Animation.Frames = *flagFrames
		if *flagFrames > 1 {
			cfg.Animation.Enabled = true
		}
	}
	if *flagOut != "" {
		cfg.Preview.Dir = *flagOut
	}
}
