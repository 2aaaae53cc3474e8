// Package heightmap generates square noise heightmaps and quantizes them
// into 8-bit grayscale RGB texture buffers.
package heightmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/noisetex/pkg/noise"
)

var (
	// ErrInvalidWidth is returned when a heightmap width is not positive.
	ErrInvalidWidth = errors.New("heightmap width must be positive")

	// ErrEmptyHeightmap is returned when scanning a heightmap with no samples.
	ErrEmptyHeightmap = errors.New("heightmap has no samples")

	// ErrNonFiniteSample is returned when a sample is NaN or infinite.
	ErrNonFiniteSample = errors.New("heightmap sample is not finite")
)

// Heightmap is a Width x Width grid of raw samples.
// Sample i holds grid coordinate (x, y) with i = x*Width + y.
type Heightmap struct {
	Width   int
	Samples []float64
}

// At returns the sample at grid coordinate (x, y).
func (h Heightmap) At(x, y int) float64 {
	return h.Samples[x*h.Width+y]
}

// Len returns the number of samples a heightmap of this width holds.
func (h Heightmap) Len() int {
	return h.Width * h.Width
}

// Generate samples s over a width x width grid.
func Generate(width int, s noise.Sampler) (Heightmap, error) {
	var h Heightmap
	if err := GenerateInto(&h, width, s); err != nil {
		return Heightmap{}, err
	}
	return h, nil
}

// GenerateInto fills h with a width x width grid sampled from s, reusing the
// existing sample storage when it is large enough.
func GenerateInto(h *Heightmap, width int, s noise.Sampler) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	n := width * width
	if cap(h.Samples) >= n {
		h.Samples = h.Samples[:n]
	} else {
		h.Samples = make([]float64, n)
	}
	h.Width = width

	for x := 0; x < width; x++ {
		for y := 0; y < width; y++ {
			h.Samples[x*width+y] = s.Sample(float64(x), float64(y))
		}
	}

	return nil
}

// MinMax returns the smallest and largest sample. Both accumulators start from
// the first sample, so no assumption is made about the sampler's range.
func MinMax(samples []float64) (lo, hi float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrEmptyHeightmap
	}

	lo, hi = samples[0], samples[0]
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("%w: index %d", ErrNonFiniteSample, i)
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}
