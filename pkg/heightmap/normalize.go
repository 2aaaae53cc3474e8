package heightmap

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrDegenerateRange matches any *DegenerateRangeError via errors.Is.
var ErrDegenerateRange = errors.New("degenerate heightmap range")

// DegenerateRangeError reports a heightmap whose samples are all equal, which
// leaves no range to map onto [0, 255].
type DegenerateRangeError struct {
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate heightmap range: every sample equals %v", e.Value)
}

// Is lets errors.Is match ErrDegenerateRange.
func (e *DegenerateRangeError) Is(target error) bool {
	return target == ErrDegenerateRange
}

// Rounding selects how a scaled sample in [0, 255] becomes a byte.
type Rounding int

const (
	// RoundNearest rounds half away from zero.
	RoundNearest Rounding = iota
	// Truncate drops the fractional part.
	Truncate
)

func (r Rounding) String() string {
	switch r {
	case RoundNearest:
		return "nearest"
	case Truncate:
		return "truncate"
	}
	return fmt.Sprintf("Rounding(%d)", int(r))
}

// ParseRounding parses "nearest" or "truncate".
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "round", "":
		return RoundNearest, nil
	case "truncate", "trunc":
		return Truncate, nil
	}
	return 0, fmt.Errorf("unknown rounding mode %q", s)
}

// BytesPerPixel is the channel count of a normalized buffer.
const BytesPerPixel = 3

// DefaultFallback is the mid-gray written when a heightmap is flat.
const DefaultFallback byte = 128

// Normalizer maps heightmap samples linearly onto [0, 255], replicating the
// byte across three channels per sample.
type Normalizer struct {
	Rounding Rounding
	// Fallback fills the buffer when every sample is equal.
	Fallback byte
}

// DefaultNormalizer rounds to nearest and falls back to mid-gray.
func DefaultNormalizer() Normalizer {
	return Normalizer{
		Rounding: RoundNearest,
		Fallback: DefaultFallback,
	}
}

// Stats describes one normalization pass.
type Stats struct {
	Min    float64 // smallest raw sample
	Max    float64 // largest raw sample
	Scale  float64 // m = 1 / (max - min)
	Offset float64 // c = -(m * min)
	OutMin byte
	OutMax byte
}

// Normalize writes h into dst as Width*Width*3 bytes and returns the filled
// buffer. dst is reused when its capacity suffices; every byte of the result
// is overwritten.
//
// A flat heightmap yields a buffer filled with n.Fallback together with a
// *DegenerateRangeError; callers may upload the buffer and treat the error as
// a warning.
func (n Normalizer) Normalize(h Heightmap, dst []byte) ([]byte, Stats, error) {
	if h.Width <= 0 {
		return dst, Stats{}, fmt.Errorf("%w: %d", ErrInvalidWidth, h.Width)
	}
	if len(h.Samples) != h.Len() {
		return dst, Stats{}, fmt.Errorf("heightmap has %d samples, want %d", len(h.Samples), h.Len())
	}

	lo, hi, err := MinMax(h.Samples)
	if err != nil {
		return dst, Stats{}, err
	}

	size := h.Len() * BytesPerPixel
	if cap(dst) >= size {
		dst = dst[:size]
	} else {
		dst = make([]byte, size)
	}

	stats := Stats{Min: lo, Max: hi}

	if hi == lo {
		for i := range dst {
			dst[i] = n.Fallback
		}
		stats.OutMin, stats.OutMax = n.Fallback, n.Fallback
		return dst, stats, &DegenerateRangeError{Value: lo}
	}

	// Finite samples far apart can overflow hi-lo; halving both ends keeps
	// the ratio and stays finite.
	scale := 1.0
	span := hi - lo
	if math.IsInf(span, 0) {
		scale = 0.5
		span = hi*scale - lo*scale
	}
	m := scale / span
	stats.Scale, stats.Offset = m, -(m * lo)
	stats.OutMin, stats.OutMax = 255, 0

	for i, v := range h.Samples {
		// (v-lo)/span equals m*v+c but is exact at both ends of the range.
		b := n.quantize((v*scale - lo*scale) / span)
		if b < stats.OutMin {
			stats.OutMin = b
		}
		if b > stats.OutMax {
			stats.OutMax = b
		}
		j := i * BytesPerPixel
		dst[j] = b
		dst[j+1] = b
		dst[j+2] = b
	}

	return dst, stats, nil
}

// quantize maps t in [0, 1] to a byte, clamping values pushed outside the
// range by floating-point error.
func (n Normalizer) quantize(t float64) byte {
	if math.IsNaN(t) {
		return 0
	}
	v := 255 * t
	if n.Rounding == Truncate {
		v = math.Trunc(v)
	} else {
		v = math.Round(v)
	}
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
