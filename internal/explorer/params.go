// Package explorer holds the interactive noise explorer state: the parameters
// edited by the GUI, change detection between frames, and regeneration of the
// normalized texture buffer.
package explorer

import (
	"strings"

	"github.com/Faultbox/noisetex/pkg/noise"
)

// Params are the user-editable noise parameters. Field types match the
// widgets that edit them, and the struct is comparable with ==.
type Params struct {
	Frequency float32
	Kind      noise.Kind
	Seed      int32
	Cellular  CellularParams
	Fractal   FractalParams
}

// CellularParams are only used by the Cellular kind.
type CellularParams struct {
	Distance noise.DistanceFunc
	Return   noise.ReturnType
	Jitter   float32
	Lookup   LookupParams
}

// LookupParams describe the sampler read by the "Noise Lookup" return type.
type LookupParams struct {
	Kind      noise.Kind
	Frequency float32
}

// FractalParams are only used by fractal kinds.
type FractalParams struct {
	Type       noise.FractalType
	Octaves    int32
	Lacunarity float32
	Gain       float32
}

// ParamsFromConfig converts a noise.Config into explorer parameters. The
// seed must fit in an int32.
func ParamsFromConfig(cfg noise.Config) Params {
	p := Params{
		Frequency: float32(cfg.Frequency),
		Kind:      cfg.Kind,
		Seed:      int32(cfg.Seed),
		Cellular: CellularParams{
			Distance: cfg.Cellular.Distance,
			Return:   cfg.Cellular.Return,
			Jitter:   float32(cfg.Cellular.Jitter),
		},
		Fractal: FractalParams{
			Type:       cfg.Fractal.Type,
			Octaves:    int32(cfg.Fractal.Octaves),
			Lacunarity: float32(cfg.Fractal.Lacunarity),
			Gain:       float32(cfg.Fractal.Gain),
		},
	}

	lookup := cfg.Cellular.Lookup
	if lookup == nil {
		lookup = noise.DefaultLookup()
	}
	p.Cellular.Lookup = LookupParams{
		Kind:      lookup.Kind,
		Frequency: float32(lookup.Frequency),
	}
	return p
}

// NoiseConfig builds the sampler configuration for p on top of the defaults.
func (p Params) NoiseConfig() noise.Config {
	return p.ConfigFrom(noise.DefaultConfig())
}

// ConfigFrom builds the sampler configuration for p. Float fields that still
// equal the float32 rounding of their value in base take base's exact value,
// so untouched settings match what the other programs read from the same
// config. The lookup sampler shares p's seed.
func (p Params) ConfigFrom(base noise.Config) noise.Config {
	cfg := noise.DefaultConfig()
	cfg.Seed = int64(p.Seed)
	cfg.Frequency = widen(p.Frequency, base.Frequency)
	cfg.Kind = p.Kind

	cfg.Fractal = noise.FractalConfig{
		Type:       p.Fractal.Type,
		Octaves:    int(p.Fractal.Octaves),
		Lacunarity: widen(p.Fractal.Lacunarity, base.Fractal.Lacunarity),
		Gain:       widen(p.Fractal.Gain, base.Fractal.Gain),
	}

	baseLookup := base.Cellular.Lookup
	if baseLookup == nil {
		baseLookup = noise.DefaultLookup()
	}
	lookup := noise.DefaultLookup()
	lookup.Seed = cfg.Seed
	lookup.Kind = p.Cellular.Lookup.Kind
	lookup.Frequency = widen(p.Cellular.Lookup.Frequency, baseLookup.Frequency)

	cfg.Cellular = noise.CellularConfig{
		Distance: p.Cellular.Distance,
		Return:   p.Cellular.Return,
		Jitter:   widen(p.Cellular.Jitter, base.Cellular.Jitter),
		Lookup:   lookup,
	}
	return cfg
}

// widen returns exact if v is its float32 rounding, otherwise v itself.
func widen(v float32, exact float64) float64 {
	if float32(exact) == v {
		return exact
	}
	return float64(v)
}

// Change is a set of parameter groups that differ between two Params.
type Change uint8

const (
	ChangeNone Change = 0
	// ChangePrimary covers frequency, kind, seed and the fractal settings.
	ChangePrimary Change = 1 << 0
	// ChangeCellular covers distance, return type, jitter and the lookup sampler.
	ChangeCellular Change = 1 << 1

	ChangeAll = ChangePrimary | ChangeCellular
)

// Has reports whether every bit of o is set in c.
func (c Change) Has(o Change) bool {
	return c&o == o
}

func (c Change) String() string {
	if c == ChangeNone {
		return "none"
	}
	var parts []string
	if c.Has(ChangePrimary) {
		parts = append(parts, "primary")
	}
	if c.Has(ChangeCellular) {
		parts = append(parts, "cellular")
	}
	return strings.Join(parts, "|")
}

// Detect compares the last generated parameters with the current ones.
// Any set bit means the texture must be regenerated in full.
func Detect(prev, cur Params) Change {
	var c Change
	if prev.Frequency != cur.Frequency ||
		prev.Kind != cur.Kind ||
		prev.Seed != cur.Seed ||
		prev.Fractal != cur.Fractal {
		c |= ChangePrimary
	}
	if prev.Cellular != cur.Cellular {
		c |= ChangeCellular
	}
	return c
}
