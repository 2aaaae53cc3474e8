// Package noise provides seeded 2D noise samplers for heightmap generation.
//
// Perlin and Simplex kinds are backed by go-perlin and opensimplex-go; value,
// cubic, white and cellular kinds use an integer-hash lattice. Every kind
// produces values bounded in [-1, 1].
package noise

import (
	"fmt"
	"strings"
)

// Sampler produces a scalar noise value for a 2D coordinate.
type Sampler interface {
	Sample(x, y float64) float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(x, y float64) float64

// Sample calls f(x, y).
func (f SamplerFunc) Sample(x, y float64) float64 {
	return f(x, y)
}

// Kind selects the noise algorithm.
type Kind int

// Noise kinds, in the order shown by the explorer's combo box.
const (
	Value Kind = iota
	ValueFractal
	Perlin
	PerlinFractal
	Simplex
	SimplexFractal
	Cellular
	WhiteNoise
	Cubic
	CubicFractal
)

var kindNames = []string{
	"Value",
	"Value Fractal",
	"Perlin",
	"Perlin Fractal",
	"Simplex",
	"Simplex Fractal",
	"Cellular",
	"White Noise",
	"Cubic",
	"Cubic Fractal",
}

// Kinds returns every noise kind in display order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// KindNames returns the display names of all kinds, indexed by Kind.
func KindNames() []string {
	return append([]string(nil), kindNames...)
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsFractal reports whether the kind layers several octaves.
func (k Kind) IsFractal() bool {
	switch k {
	case ValueFractal, PerlinFractal, SimplexFractal, CubicFractal:
		return true
	}
	return false
}

// Base returns the single-octave kind a fractal kind is built from.
// Non-fractal kinds are returned unchanged.
func (k Kind) Base() Kind {
	switch k {
	case ValueFractal:
		return Value
	case PerlinFractal:
		return Perlin
	case SimplexFractal:
		return Simplex
	case CubicFractal:
		return Cubic
	}
	return k
}

// ParseKind parses a kind name. Matching ignores case, spaces, '-' and '_',
// so "Perlin Fractal", "perlin_fractal" and "PerlinFractal" are equivalent.
func ParseKind(s string) (Kind, error) {
	i, ok := parseEnum(s, kindNames)
	if !ok {
		return 0, fmt.Errorf("unknown noise kind %q", s)
	}
	return Kind(i), nil
}

// DistanceFunc selects the metric used by cellular noise.
type DistanceFunc int

const (
	Euclidean DistanceFunc = iota
	Manhattan
	Natural
)

var distanceNames = []string{"Euclidean", "Manhattan", "Natural"}

// DistanceNames returns the display names of all distance functions.
func DistanceNames() []string {
	return append([]string(nil), distanceNames...)
}

func (d DistanceFunc) String() string {
	if d < 0 || int(d) >= len(distanceNames) {
		return fmt.Sprintf("DistanceFunc(%d)", int(d))
	}
	return distanceNames[d]
}

// ParseDistanceFunc parses a distance function name.
func ParseDistanceFunc(s string) (DistanceFunc, error) {
	i, ok := parseEnum(s, distanceNames)
	if !ok {
		return 0, fmt.Errorf("unknown cellular distance function %q", s)
	}
	return DistanceFunc(i), nil
}

// ReturnType selects what cellular noise reports for a point.
type ReturnType int

const (
	CellValue ReturnType = iota
	NoiseLookup
	Distance
	Distance2
	Distance2Add
	Distance2Sub
	Distance2Mul
	Distance2Div
)

var returnNames = []string{
	"Cell Value",
	"Noise Lookup",
	"Distance",
	"Distance 2",
	"Distance 2 Add",
	"Distance 2 Sub",
	"Distance 2 Mul",
	"Distance 2 Div",
}

// ReturnTypeNames returns the display names of all cellular return types.
func ReturnTypeNames() []string {
	return append([]string(nil), returnNames...)
}

func (r ReturnType) String() string {
	if r < 0 || int(r) >= len(returnNames) {
		return fmt.Sprintf("ReturnType(%d)", int(r))
	}
	return returnNames[r]
}

// ParseReturnType parses a cellular return type name.
func ParseReturnType(s string) (ReturnType, error) {
	i, ok := parseEnum(s, returnNames)
	if !ok {
		return 0, fmt.Errorf("unknown cellular return type %q", s)
	}
	return ReturnType(i), nil
}

// FractalType selects how octaves are combined.
type FractalType int

const (
	FBM FractalType = iota
	Billow
	RigidMulti
)

var fractalNames = []string{"FBM", "Billow", "Rigid Multi"}

// FractalNames returns the display names of all fractal types.
func FractalNames() []string {
	return append([]string(nil), fractalNames...)
}

func (f FractalType) String() string {
	if f < 0 || int(f) >= len(fractalNames) {
		return fmt.Sprintf("FractalType(%d)", int(f))
	}
	return fractalNames[f]
}

// ParseFractalType parses a fractal type name.
func ParseFractalType(s string) (FractalType, error) {
	i, ok := parseEnum(s, fractalNames)
	if !ok {
		return 0, fmt.Errorf("unknown fractal type %q", s)
	}
	return FractalType(i), nil
}

func parseEnum(s string, names []string) (int, bool) {
	key := normalizeName(s)
	for i, name := range names {
		if normalizeName(name) == key {
			return i, true
		}
	}
	return 0, false
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
