package noise

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid noise config")

// Config describes a noise sampler.
type Config struct {
	Seed      int64
	Frequency float64
	Kind      Kind
	Fractal   FractalConfig
	Cellular  CellularConfig
}

// FractalConfig controls the octave layering of fractal kinds.
type FractalConfig struct {
	Type       FractalType
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// CellularConfig controls cellular noise.
type CellularConfig struct {
	Distance DistanceFunc
	Return   ReturnType
	Jitter   float64
	// Lookup is sampled at each cell's feature point when Return is NoiseLookup.
	Lookup *Config
}

// DefaultConfig returns the settings the explorer starts from.
func DefaultConfig() Config {
	return Config{
		Seed:      1337,
		Frequency: 0.01,
		Kind:      Simplex,
		Fractal: FractalConfig{
			Type:       FBM,
			Octaves:    3,
			Lacunarity: 2.0,
			Gain:       0.5,
		},
		Cellular: CellularConfig{
			Distance: Euclidean,
			Return:   CellValue,
			Jitter:   0.45,
			Lookup:   DefaultLookup(),
		},
	}
}

// DefaultLookup returns the lookup sampler used by NoiseLookup cellular noise.
func DefaultLookup() *Config {
	return &Config{
		Seed:      1337,
		Frequency: 0.2,
		Kind:      Simplex,
		Fractal: FractalConfig{
			Type:       FBM,
			Octaves:    3,
			Lacunarity: 2.0,
			Gain:       0.5,
		},
		Cellular: CellularConfig{Jitter: 0.45},
	}
}

// Validate checks that the config describes a usable sampler.
func (c Config) Validate() error {
	if math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) || c.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, c.Frequency)
	}
	if c.Kind < 0 || int(c.Kind) >= len(kindNames) {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, int(c.Kind))
	}

	if c.Kind.IsFractal() {
		f := c.Fractal
		if f.Type < 0 || int(f.Type) >= len(fractalNames) {
			return fmt.Errorf("%w: unknown fractal type %d", ErrInvalidConfig, int(f.Type))
		}
		if f.Octaves < 1 {
			return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidConfig, f.Octaves)
		}
		if !isFinite(f.Lacunarity) || !isFinite(f.Gain) {
			return fmt.Errorf("%w: lacunarity and gain must be finite", ErrInvalidConfig)
		}
	}

	if c.Kind == Cellular {
		cc := c.Cellular
		if cc.Distance < 0 || int(cc.Distance) >= len(distanceNames) {
			return fmt.Errorf("%w: unknown distance function %d", ErrInvalidConfig, int(cc.Distance))
		}
		if cc.Return < 0 || int(cc.Return) >= len(returnNames) {
			return fmt.Errorf("%w: unknown return type %d", ErrInvalidConfig, int(cc.Return))
		}
		if !(cc.Jitter >= 0 && cc.Jitter <= 1) {
			return fmt.Errorf("%w: jitter must be in [0, 1], got %v", ErrInvalidConfig, cc.Jitter)
		}
		if cc.Return == NoiseLookup {
			if cc.Lookup == nil {
				return fmt.Errorf("%w: noise lookup requires a lookup sampler", ErrInvalidConfig)
			}
			if cc.Lookup.Kind == Cellular && cc.Lookup.Cellular.Return == NoiseLookup {
				return fmt.Errorf("%w: lookup sampler cannot itself use noise lookup", ErrInvalidConfig)
			}
			if err := cc.Lookup.Validate(); err != nil {
				return fmt.Errorf("lookup: %w", err)
			}
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
