// noisegen writes a normalized noise texture to an image file without
// opening a window.
//
// Usage:
//
//	noisegen -kind "Simplex Fractal" -seed 42 -size 512 -out noise.png
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/config"
	"github.com/Faultbox/noisetex/internal/engine/debug"
	"github.com/Faultbox/noisetex/internal/logger"
	"github.com/Faultbox/noisetex/pkg/heightmap"
	"github.com/Faultbox/noisetex/pkg/noise"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path, err := generate(cfg)
	if err != nil {
		logger.Error("noisegen failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Println(path)
}

// generate renders the configured texture and returns the written path.
func generate(cfg *config.Config) (string, error) {
	noiseCfg, err := cfg.Noise.Build()
	if err != nil {
		return "", err
	}
	norm, err := cfg.Texture.Normalizer()
	if err != nil {
		return "", err
	}
	format, err := heightmap.ParseFormat(cfg.Export.Format)
	if err != nil {
		return "", err
	}

	gen, err := noise.New(noiseCfg)
	if err != nil {
		return "", err
	}

	hm, err := heightmap.Generate(cfg.Texture.Size, gen)
	if err != nil {
		return "", fmt.Errorf("generating heightmap: %w", err)
	}

	rgb, stats, err := norm.Normalize(hm, nil)
	if errors.Is(err, heightmap.ErrDegenerateRange) {
		logger.Warn("flat heightmap, using fallback gray", zap.Error(err))
	} else if err != nil {
		return "", fmt.Errorf("normalizing heightmap: %w", err)
	}

	logger.Debug("normalized heightmap",
		zap.Float64("min", stats.Min),
		zap.Float64("max", stats.Max),
		zap.Float64("scale", stats.Scale),
		zap.Float64("offset", stats.Offset),
	)

	if cfg.Export.Path == "" {
		capture := debug.NewCapture(cfg.Export.Dir, "noise", format)
		return capture.CaptureRGB(rgb, cfg.Texture.Size)
	}

	path := cfg.Export.Path
	format = heightmap.FormatFromPath(path, format)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img, err := heightmap.ToImage(rgb, cfg.Texture.Size)
	if err != nil {
		return "", err
	}
	if err := debug.WriteImage(path, img, format); err != nil {
		return "", err
	}

	logger.Info("wrote noise texture",
		zap.String("path", path),
		zap.Stringer("kind", noiseCfg.Kind),
		zap.Int64("seed", noiseCfg.Seed),
		zap.Int("size", cfg.Texture.Size),
	)
	return path, nil
}
