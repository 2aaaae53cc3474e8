package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagKind       = flag.String("kind", "", "Noise kind (e.g. \"Perlin\", \"Simplex Fractal\", \"Cellular\")")
	flagSeed       = int64Flag("seed", "Noise seed (overrides the configured seed when given)")
	flagFrequency  = flag.Float64("frequency", 0, "Noise frequency")
	flagSize       = flag.Int("size", 0, "Texture width and height in pixels")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagOut        = flag.String("out", "", "Output image path")
	flagFormat     = flag.String("format", "", "Export image format (png or bmp)")
)

// optionalInt64 is an int64 flag that records whether it was given, so zero
// can be requested explicitly.
type optionalInt64 struct {
	value int64
	set   bool
}

func int64Flag(name, usage string) *optionalInt64 {
	f := &optionalInt64{}
	flag.Var(f, name, usage)
	return f
}

func (f *optionalInt64) String() string {
	if f == nil {
		return "0"
	}
	return strconv.FormatInt(f.value, 10)
}

func (f *optionalInt64) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagKind != "" {
		cfg.Noise.Kind = *flagKind
	}
	if flagSeed.set {
		cfg.Noise.Seed = flagSeed.value
	}
	if *flagFrequency > 0 {
		cfg.Noise.Frequency = *flagFrequency
	}
	if *flagSize > 0 {
		cfg.Texture.Size = *flagSize
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
}
