package noise

import (
	"fmt"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// source evaluates single-kind noise in frequency-scaled space.
type source interface {
	eval(x, y float64) float64
}

type sourceFunc func(x, y float64) float64

func (f sourceFunc) eval(x, y float64) float64 { return f(x, y) }

// Generator samples noise for a validated Config.
type Generator struct {
	cfg Config
	src source
}

// New builds a generator for cfg.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}

	return &Generator{cfg: cfg, src: src}, nil
}

// Config returns the configuration the generator was built from.
func (g *Generator) Config() Config {
	return g.cfg
}

// Sample returns the noise value at (x, y), in [-1, 1].
func (g *Generator) Sample(x, y float64) float64 {
	return clamp1(g.src.eval(x*g.cfg.Frequency, y*g.cfg.Frequency))
}

func buildSource(cfg Config) (source, error) {
	switch {
	case cfg.Kind.IsFractal():
		return newFractal(cfg.Fractal, cfg.Seed, func(seed int64) source {
			return newBase(cfg.Kind.Base(), seed)
		}), nil

	case cfg.Kind == Cellular:
		var lookup Sampler
		if cfg.Cellular.Return == NoiseLookup {
			g, err := New(*cfg.Cellular.Lookup)
			if err != nil {
				return nil, fmt.Errorf("building lookup sampler: %w", err)
			}
			lookup = g
		}
		return newCellular(cfg.Seed, cfg.Cellular, lookup), nil

	case cfg.Kind == WhiteNoise:
		return whiteNoise{seed: cfg.Seed}, nil

	default:
		return newBase(cfg.Kind, cfg.Seed), nil
	}
}

// newBase builds a single-octave source for Value, Perlin, Simplex or Cubic.
func newBase(kind Kind, seed int64) source {
	switch kind {
	case Perlin:
		// alpha and beta only matter across octaves; n=1 keeps a single octave.
		p := perlin.NewPerlin(2, 2, 1, seed)
		return sourceFunc(p.Noise2D)
	case Simplex:
		s := opensimplex.New(seed)
		return sourceFunc(s.Eval2)
	case Cubic:
		return cubicNoise{seed: seed}
	default:
		return valueNoise{seed: seed}
	}
}

func clamp1(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
