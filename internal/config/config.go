// Package config handles noisetex configuration loading and management.
package config

import (
	"fmt"
	"math"

	"github.com/Faultbox/noisetex/pkg/heightmap"
	"github.com/Faultbox/noisetex/pkg/noise"
)

// Config holds all settings shared by the noisetex programs.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Noise     NoiseConfig     `yaml:"noise"`
	Texture   TextureConfig   `yaml:"texture"`
	Export    ExportConfig    `yaml:"export"`
	Resources ResourcesConfig `yaml:"resources"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// NoiseConfig describes the noise sampler. Enum fields hold display names
// ("Perlin Fractal", "Euclidean", ...) and are parsed by NoiseConfig.Build.
type NoiseConfig struct {
	Kind      string         `yaml:"kind"`
	Seed      int64          `yaml:"seed"`
	Frequency float64        `yaml:"frequency"`
	Fractal   FractalConfig  `yaml:"fractal"`
	Cellular  CellularConfig `yaml:"cellular"`
}

// FractalConfig holds octave settings for fractal kinds.
type FractalConfig struct {
	Type       string  `yaml:"type"`
	Octaves    int     `yaml:"octaves"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
}

// CellularConfig holds cellular noise settings.
type CellularConfig struct {
	Distance string       `yaml:"distance"`
	Return   string       `yaml:"return"`
	Jitter   float64      `yaml:"jitter"`
	Lookup   LookupConfig `yaml:"lookup"`
}

// LookupConfig describes the sampler read by "Noise Lookup" cellular noise.
type LookupConfig struct {
	Kind      string  `yaml:"kind"`
	Frequency float64 `yaml:"frequency"`
}

// TextureConfig holds heightmap size and quantization settings.
type TextureConfig struct {
	Size     int    `yaml:"size"`
	Rounding string `yaml:"rounding"` // "nearest" or "truncate"
	Fallback uint8  `yaml:"fallback"` // gray level for flat heightmaps
}

// ExportConfig holds image export settings.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "png" or "bmp"
	Path   string `yaml:"path"`   // explicit output file (noisegen)
}

// ResourcesConfig points at optional on-disk fonts and shader overrides.
type ResourcesConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the explorer's starting values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Noise Explorer",
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Noise: NoiseConfig{
			Kind:      noise.Perlin.String(),
			Seed:      0,
			Frequency: 0.02,
			Fractal: FractalConfig{
				Type:       noise.FBM.String(),
				Octaves:    3,
				Lacunarity: 2.0,
				Gain:       0.5,
			},
			Cellular: CellularConfig{
				Distance: noise.Euclidean.String(),
				Return:   noise.CellValue.String(),
				Jitter:   0.45,
				Lookup: LookupConfig{
					Kind:      noise.Simplex.String(),
					Frequency: 0.2,
				},
			},
		},
		Texture: TextureConfig{
			Size:     1024,
			Rounding: heightmap.RoundNearest.String(),
			Fallback: heightmap.DefaultFallback,
		},
		Export: ExportConfig{
			Dir:    "exports",
			Format: heightmap.FormatPNG.String(),
		},
		Resources: ResourcesConfig{
			Dir: "resources",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Build converts the noise section into a validated noise.Config. Seeds are
// limited to 32 bits so every program, the explorer's seed field included,
// renders the same texture from one file.
func (n NoiseConfig) Build() (noise.Config, error) {
	if n.Seed < math.MinInt32 || n.Seed > math.MaxInt32 {
		return noise.Config{}, fmt.Errorf("%w: seed %d does not fit in 32 bits", noise.ErrInvalidConfig, n.Seed)
	}

	cfg := noise.DefaultConfig()
	cfg.Seed = n.Seed
	cfg.Frequency = n.Frequency

	var err error
	if cfg.Kind, err = noise.ParseKind(n.Kind); err != nil {
		return noise.Config{}, err
	}

	if n.Fractal.Type != "" {
		if cfg.Fractal.Type, err = noise.ParseFractalType(n.Fractal.Type); err != nil {
			return noise.Config{}, err
		}
	}
	cfg.Fractal.Octaves = n.Fractal.Octaves
	cfg.Fractal.Lacunarity = n.Fractal.Lacunarity
	cfg.Fractal.Gain = n.Fractal.Gain

	if n.Cellular.Distance != "" {
		if cfg.Cellular.Distance, err = noise.ParseDistanceFunc(n.Cellular.Distance); err != nil {
			return noise.Config{}, err
		}
	}
	if n.Cellular.Return != "" {
		if cfg.Cellular.Return, err = noise.ParseReturnType(n.Cellular.Return); err != nil {
			return noise.Config{}, err
		}
	}
	cfg.Cellular.Jitter = n.Cellular.Jitter

	lookup := noise.DefaultLookup()
	lookup.Seed = n.Seed
	if n.Cellular.Lookup.Kind != "" {
		if lookup.Kind, err = noise.ParseKind(n.Cellular.Lookup.Kind); err != nil {
			return noise.Config{}, fmt.Errorf("lookup: %w", err)
		}
	}
	if n.Cellular.Lookup.Frequency != 0 {
		lookup.Frequency = n.Cellular.Lookup.Frequency
	}
	cfg.Cellular.Lookup = lookup

	if err := cfg.Validate(); err != nil {
		return noise.Config{}, err
	}
	return cfg, nil
}

// Normalizer converts the texture section into a heightmap.Normalizer.
func (t TextureConfig) Normalizer() (heightmap.Normalizer, error) {
	rounding, err := heightmap.ParseRounding(t.Rounding)
	if err != nil {
		return heightmap.Normalizer{}, err
	}
	return heightmap.Normalizer{Rounding: rounding, Fallback: t.Fallback}, nil
}

// Validate checks the settings every program depends on.
func (c *Config) Validate() error {
	if c.Texture.Size <= 0 {
		return fmt.Errorf("texture size must be positive, got %d", c.Texture.Size)
	}
	if _, err := c.Noise.Build(); err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	if _, err := c.Texture.Normalizer(); err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	if _, err := heightmap.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
