// Hello Noise opens a window and draws a single Perlin noise texture on a quad.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/assets"
	"github.com/Faultbox/noisetex/internal/config"
	"github.com/Faultbox/noisetex/internal/engine/input"
	"github.com/Faultbox/noisetex/internal/engine/renderer"
	"github.com/Faultbox/noisetex/internal/engine/shaders"
	"github.com/Faultbox/noisetex/internal/engine/texture"
	"github.com/Faultbox/noisetex/internal/engine/window"
	"github.com/Faultbox/noisetex/internal/logger"
	"github.com/Faultbox/noisetex/pkg/heightmap"
	"github.com/Faultbox/noisetex/pkg/noise"
)

// helloSeed is the seed drawn unless a config file or -seed sets one.
const helloSeed = 3455

var clearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

func main() {
	config.ParseFlags()

	cfg, err := config.LoadWith(defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hello Noise ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("hellonoise failed", zap.Error(err))
		os.Exit(1)
	}
}

// defaults are the shared defaults with the demo's seed and title. A config
// file or flags still override them.
func defaults() *config.Config {
	cfg := config.Default()
	cfg.Noise.Seed = helloSeed
	cfg.Window.Title = "Hello Noise"
	return cfg
}

func run(cfg *config.Config) error {
	noiseCfg, err := cfg.Noise.Build()
	if err != nil {
		return err
	}
	norm, err := cfg.Texture.Normalizer()
	if err != nil {
		return err
	}

	gen, err := noise.New(noiseCfg)
	if err != nil {
		return err
	}

	hm, err := heightmap.Generate(cfg.Texture.Size, gen)
	if err != nil {
		return err
	}

	rgb, stats, err := norm.Normalize(hm, nil)
	if errors.Is(err, heightmap.ErrDegenerateRange) {
		logger.Warn("flat heightmap, using fallback gray", zap.Error(err))
	} else if err != nil {
		return err
	}
	logger.Info("generated noise texture",
		zap.Stringer("kind", noiseCfg.Kind),
		zap.Int64("seed", noiseCfg.Seed),
		zap.Float64("frequency", noiseCfg.Frequency),
		zap.Int("size", cfg.Texture.Size),
		zap.Float64("min", stats.Min),
		zap.Float64("max", stats.Max),
	)

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	res := assets.NewResources(cfg.Resources.Dir)
	vertSrc, err := res.LoadShader(shaders.QuadVertexName, shaders.QuadVertexShader)
	if err != nil {
		return err
	}
	fragSrc, err := res.LoadShader(shaders.QuadFragmentName, shaders.QuadFragmentShader)
	if err != nil {
		return err
	}

	width, height := win.GetDrawableSize()
	rend, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: clearColor,
	}, vertSrc, fragSrc)
	if err != nil {
		return err
	}
	defer rend.Close()

	tex := texture.New()
	defer tex.Delete()
	tex.Upload(cfg.Texture.Size, cfg.Texture.Size, rgb)

	in := input.New()
	for !in.Update() {
		if _, _, ok := in.Resized(); ok {
			rend.Resize(win.GetDrawableSize())
		}

		rend.Begin()
		rend.DrawTexture(tex)
		win.SwapBuffers()
	}

	logger.Info("window closed normally")
	return nil
}
