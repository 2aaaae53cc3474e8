package main

import (
	"testing"

	"github.com/Faultbox/noisetex/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()
	if cfg.Noise.Seed != helloSeed {
		t.Errorf("seed = %d, want %d", cfg.Noise.Seed, helloSeed)
	}
	if cfg.Window.Title != "Hello Noise" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	if config.Default().Noise.Seed == helloSeed {
		t.Error("shared defaults should keep their own seed")
	}
}
