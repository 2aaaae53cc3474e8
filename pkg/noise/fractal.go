package noise

import "math"

// fractal layers several octaves of a base source. Each octave gets its own
// seed so lattice features do not line up between octaves.
type fractal struct {
	kind       FractalType
	octaves    []source
	lacunarity float64
	gain       float64
	bounding   float64
}

func newFractal(cfg FractalConfig, seed int64, base func(seed int64) source) *fractal {
	f := &fractal{
		kind:       cfg.Type,
		octaves:    make([]source, cfg.Octaves),
		lacunarity: cfg.Lacunarity,
		gain:       cfg.Gain,
	}

	amp := 1.0
	for i := range f.octaves {
		f.octaves[i] = base(seed + int64(i))
		f.bounding += math.Abs(amp)
		amp *= cfg.Gain
	}

	return f
}

func (f *fractal) eval(x, y float64) float64 {
	var sum float64
	amp := 1.0

	for _, oct := range f.octaves {
		n := oct.eval(x, y)
		switch f.kind {
		case Billow:
			n = math.Abs(n)*2 - 1
		case RigidMulti:
			n = 1 - 2*math.Abs(n)
		}
		sum += n * amp

		x *= f.lacunarity
		y *= f.lacunarity
		amp *= f.gain
	}

	if f.bounding == 0 {
		return 0
	}
	return sum / f.bounding
}
