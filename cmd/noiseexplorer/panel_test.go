package main

import (
	"testing"

	"github.com/Faultbox/noisetex/internal/config"
	"github.com/Faultbox/noisetex/internal/explorer"
	"github.com/Faultbox/noisetex/pkg/heightmap"
	"github.com/Faultbox/noisetex/pkg/noise"
)

func TestNoiseSettingsRoundTrip(t *testing.T) {
	cfg := noise.DefaultConfig()
	cfg.Kind = noise.Cellular
	cfg.Seed = 3455
	cfg.Frequency = 0.25
	cfg.Cellular.Distance = noise.Natural
	cfg.Cellular.Return = noise.Distance2Mul
	p := explorer.ParamsFromConfig(cfg)

	saved := config.Default()
	saved.Noise = noiseSettings(p.ConfigFrom(cfg))

	if saved.Noise.Kind != "Cellular" || saved.Noise.Cellular.Return != "Distance 2 Mul" {
		t.Errorf("unexpected saved names %+v", saved.Noise)
	}

	built, err := saved.Noise.Build()
	if err != nil {
		t.Fatalf("saved settings do not build: %v", err)
	}
	if got := explorer.ParamsFromConfig(built); got != p {
		t.Errorf("round trip changed params:\n got %+v\nwant %+v", got, p)
	}
}

func TestSaveSettingsKeepsFileValues(t *testing.T) {
	file := config.Default().Noise
	file.Seed = 2147483647
	file.Frequency = 0.02
	file.Cellular.Lookup.Frequency = 0.13

	cfg, err := file.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s, err := explorer.New(4, cfg, heightmap.DefaultNormalizer(), &discardSink{}, nil)
	if err != nil {
		t.Fatalf("explorer.New failed: %v", err)
	}

	saved := noiseSettings(s.NoiseConfig())
	if saved.Seed != file.Seed || saved.Frequency != file.Frequency {
		t.Errorf("saved seed/frequency = %d/%v, want %d/%v", saved.Seed, saved.Frequency, file.Seed, file.Frequency)
	}
	if saved.Cellular.Lookup.Frequency != 0.13 {
		t.Errorf("saved lookup frequency = %v, want 0.13", saved.Cellular.Lookup.Frequency)
	}
}

type discardSink struct{}

func (discardSink) Upload(int, int, []byte) {}
