package noise

import (
	"errors"
	"math"
	"testing"
)

// allConfigs returns one config per kind, plus every cellular return type.
func allConfigs() map[string]Config {
	configs := make(map[string]Config)
	for _, k := range Kinds() {
		cfg := DefaultConfig()
		cfg.Kind = k
		cfg.Frequency = 0.05
		configs[k.String()] = cfg
	}
	for i := range ReturnTypeNames() {
		for d := range DistanceNames() {
			cfg := DefaultConfig()
			cfg.Kind = Cellular
			cfg.Frequency = 0.05
			cfg.Cellular.Return = ReturnType(i)
			cfg.Cellular.Distance = DistanceFunc(d)
			configs["Cellular/"+ReturnType(i).String()+"/"+DistanceFunc(d).String()] = cfg
		}
	}
	for i := range FractalNames() {
		cfg := DefaultConfig()
		cfg.Kind = PerlinFractal
		cfg.Frequency = 0.05
		cfg.Fractal.Type = FractalType(i)
		configs["PerlinFractal/"+FractalType(i).String()] = cfg
	}
	return configs
}

func TestSampleBounded(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			g, err := New(cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			for x := 0; x < 64; x++ {
				for y := 0; y < 64; y++ {
					v := g.Sample(float64(x)*1.37, float64(y)*0.91)
					if math.IsNaN(v) || v < -1 || v > 1 {
						t.Fatalf("Sample(%d, %d) = %v, want value in [-1, 1]", x, y, v)
					}
				}
			}
		})
	}
}

func TestSampleDeterministic(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			a, err := New(cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			b, err := New(cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			for i := 0; i < 100; i++ {
				x, y := float64(i)*3.3, float64(i)*1.7
				if a.Sample(x, y) != b.Sample(x, y) {
					t.Fatalf("Sample(%v, %v) differs between generators with the same config", x, y)
				}
			}
		})
	}
}

func TestSeedChangesOutput(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Kind = k
			cfg.Frequency = 0.05

			a, err := New(cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			cfg.Seed++
			b, err := New(cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			differ := false
			for i := 0; i < 200 && !differ; i++ {
				x, y := float64(i)*2.3+0.5, float64(i)*1.1+0.25
				differ = a.Sample(x, y) != b.Sample(x, y)
			}
			if !differ {
				t.Errorf("seeds %d and %d produced identical samples", cfg.Seed-1, cfg.Seed)
			}
		})
	}
}

func TestSampleNotFlat(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Kind = k
			cfg.Frequency = 0.05
			g, err := New(cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			first := g.Sample(0.5, 0.5)
			for i := 1; i < 200; i++ {
				if g.Sample(float64(i)+0.5, float64(i)*0.5+0.5) != first {
					return
				}
			}
			t.Errorf("%s produced a constant field", k)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero frequency", func(c *Config) { c.Frequency = 0 }, false},
		{"negative frequency", func(c *Config) { c.Frequency = -0.1 }, false},
		{"NaN frequency", func(c *Config) { c.Frequency = math.NaN() }, false},
		{"unknown kind", func(c *Config) { c.Kind = Kind(42) }, false},
		{"fractal without octaves", func(c *Config) {
			c.Kind = SimplexFractal
			c.Fractal.Octaves = 0
		}, false},
		{"octaves ignored for non-fractal", func(c *Config) {
			c.Kind = Simplex
			c.Fractal.Octaves = 0
		}, true},
		{"jitter out of range", func(c *Config) {
			c.Kind = Cellular
			c.Cellular.Jitter = 1.5
		}, false},
		{"lookup missing", func(c *Config) {
			c.Kind = Cellular
			c.Cellular.Return = NoiseLookup
			c.Cellular.Lookup = nil
		}, false},
		{"recursive lookup", func(c *Config) {
			c.Kind = Cellular
			c.Cellular.Return = NoiseLookup
			lookup := DefaultConfig()
			lookup.Kind = Cellular
			lookup.Cellular.Return = NoiseLookup
			c.Cellular.Lookup = &lookup
		}, false},
		{"invalid lookup", func(c *Config) {
			c.Kind = Cellular
			c.Cellular.Return = NoiseLookup
			c.Cellular.Lookup = &Config{Kind: Perlin}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Error("expected validation error, got nil")
				} else if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"Perlin", Perlin},
		{"perlin fractal", PerlinFractal},
		{"perlin_fractal", PerlinFractal},
		{"PerlinFractal", PerlinFractal},
		{"white-noise", WhiteNoise},
		{" Cubic ", Cubic},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("fractal"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}

func TestParseCellularEnums(t *testing.T) {
	if d, err := ParseDistanceFunc("manhattan"); err != nil || d != Manhattan {
		t.Errorf("ParseDistanceFunc(manhattan) = %v, %v", d, err)
	}
	if r, err := ParseReturnType("distance2_add"); err != nil || r != Distance2Add {
		t.Errorf("ParseReturnType(distance2_add) = %v, %v", r, err)
	}
	if f, err := ParseFractalType("rigid-multi"); err != nil || f != RigidMulti {
		t.Errorf("ParseFractalType(rigid-multi) = %v, %v", f, err)
	}
	if _, err := ParseReturnType("nearest"); err == nil {
		t.Error("expected error for unknown return type")
	}
}

func TestKindBase(t *testing.T) {
	tests := map[Kind]Kind{
		ValueFractal:   Value,
		PerlinFractal:  Perlin,
		SimplexFractal: Simplex,
		CubicFractal:   Cubic,
		Cellular:       Cellular,
		WhiteNoise:     WhiteNoise,
	}
	for in, want := range tests {
		if got := in.Base(); got != want {
			t.Errorf("%v.Base() = %v, want %v", in, got, want)
		}
	}
}

func TestCellularJitterZeroIsRegular(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kind = Cellular
	cfg.Frequency = 1
	cfg.Cellular.Jitter = 0
	cfg.Cellular.Return = Distance

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// With no jitter every feature sits at a cell centre, so the distance
	// field repeats with period 1.
	for i := 0; i < 10; i++ {
		x, y := 0.3+float64(i)*0.05, 0.7
		if a, b := g.Sample(x, y), g.Sample(x+3, y+5); math.Abs(a-b) > 1e-9 {
			t.Errorf("Sample(%v, %v) = %v, shifted by whole cells = %v", x, y, a, b)
		}
	}

	// At a cell centre the nearest distance is zero.
	if v := g.Sample(2.5, 7.5); v != -1 {
		t.Errorf("distance at cell centre = %v, want -1", v)
	}
}

func TestSamplerFunc(t *testing.T) {
	var s Sampler = SamplerFunc(func(x, y float64) float64 { return x - y })
	if got := s.Sample(3, 1); got != 2 {
		t.Errorf("SamplerFunc.Sample(3, 1) = %v, want 2", got)
	}
}
